package codec

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
)

var cborModes = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// CBOR is a binary codec backed by github.com/fxamacker/cbor/v2.
//
// Encoding uses the core deterministic options, so equal vectors always
// encode to identical bytes.
type CBOR struct{}

// Marshal encodes the value to deterministic CBOR.
func (CBOR) Marshal(v any) ([]byte, error) {
	em, err := cborModes()
	if err != nil {
		return nil, err
	}
	return em.Marshal(v)
}

// Unmarshal decodes the CBOR data into v.
func (CBOR) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

// Name returns the unique name of the codec ("cbor").
func (CBOR) Name() string { return "cbor" }
