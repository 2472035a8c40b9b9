// Package codec centralizes element encoding for vectors.
//
// Codec selection is a compatibility boundary: bytes produced by one codec
// can only be decoded by the same codec. Codec names are stable so callers
// persisting encoded vectors can record the name next to the bytes and use
// ByName to pick the decoder later.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Compressed codecs are named "<inner>+<algorithm>", e.g. "cbor+zstd".
func ByName(name string) (Codec, bool) {
	if inner, algo, ok := strings.Cut(name, "+"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		a, ok := parseCompression(algo)
		if !ok {
			return nil, false
		}
		return Compressed{Inner: c, Algorithm: a}, true
	}

	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
