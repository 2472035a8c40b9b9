package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm of a Compressed codec.
type Compression uint8

const (
	// Zstd compresses with github.com/klauspost/compress/zstd.
	Zstd Compression = iota + 1
	// LZ4 compresses with github.com/pierrec/lz4/v4 frames.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

func parseCompression(s string) (Compression, bool) {
	switch s {
	case "zstd":
		return Zstd, true
	case "lz4":
		return LZ4, true
	default:
		return 0, false
	}
}

// zstd encoders and decoders are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil)
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil)
	})
)

// Compressed wraps another codec and compresses its output.
// Useful for large vectors of repetitive elements.
type Compressed struct {
	Inner     Codec
	Algorithm Compression
}

// Marshal encodes v with the inner codec and compresses the result.
func (c Compressed) Marshal(v any) ([]byte, error) {
	raw, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}

	switch c.Algorithm {
	case Zstd:
		enc, err := zstdEncoder()
		if err != nil {
			return nil, fmt.Errorf("failed to create compressor: %w", err)
		}
		return enc.EncodeAll(raw, nil), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("codec: unknown compression %s", c.Algorithm)
	}
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c Compressed) Unmarshal(data []byte, v any) error {
	var raw []byte

	switch c.Algorithm {
	case Zstd:
		dec, err := zstdDecoder()
		if err != nil {
			return fmt.Errorf("failed to create decompressor: %w", err)
		}
		if raw, err = dec.DecodeAll(data, nil); err != nil {
			return err
		}
	case LZ4:
		var err error
		if raw, err = io.ReadAll(lz4.NewReader(bytes.NewReader(data))); err != nil {
			return err
		}
	default:
		return fmt.Errorf("codec: unknown compression %s", c.Algorithm)
	}

	return c.inner().Unmarshal(raw, v)
}

// Name returns "<inner>+<algorithm>".
func (c Compressed) Name() string {
	return c.inner().Name() + "+" + c.Algorithm.String()
}

func (c Compressed) inner() Codec {
	if c.Inner == nil {
		return Default
	}
	return c.Inner
}
