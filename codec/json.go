package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Notes:
// - JSON is stable and portable, and readable when debugging.
// - Element types must be JSON-representable; funcs, channels and complex
//   numbers are not supported.
//
// If you need custom encoding (e.g. protobuf/msgpack), implement Codec and
// pass it to Vector.Encode / Vector.Decode.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used by Vector.MarshalJSON and Vector.UnmarshalJSON,
// and by Encode/Decode when no codec is given.
var Default Codec = GoJSON{}
