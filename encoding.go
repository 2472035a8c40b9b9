package smallvec

import (
	"fmt"

	"github.com/hupe1980/smallvec/codec"
)

// MarshalJSON encodes the elements as a JSON array using codec.Default.
//
// The receiver is a pointer, so a Vector embedded by value in a struct is
// only encoded as an array when the struct itself is marshaled through a
// pointer (json.Marshal(&doc)); marshaled by value it encodes as {}. Use a
// *Vector field when the enclosing value may be passed by value.
func (v *Vector[T, A]) MarshalJSON() ([]byte, error) {
	return v.Encode(codec.Default)
}

// UnmarshalJSON replaces the contents of v with a decoded JSON array.
func (v *Vector[T, A]) UnmarshalJSON(data []byte) error {
	return v.Decode(codec.Default, data)
}

// Encode encodes the elements with c. If c is nil, codec.Default is used.
func (v *Vector[T, A]) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	b, err := c.Marshal(v.Data())
	if err != nil {
		return nil, fmt.Errorf("smallvec: encode with %s: %w", c.Name(), err)
	}
	return b, nil
}

// Decode replaces the contents of v with elements decoded by c. If c is
// nil, codec.Default is used. On failure v is unchanged.
func (v *Vector[T, A]) Decode(c codec.Codec, data []byte) error {
	if c == nil {
		c = codec.Default
	}
	var values []T
	if err := c.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("smallvec: decode with %s: %w", c.Name(), err)
	}
	return v.Assign(values...)
}

// Format implements fmt.Formatter by formatting the elements as a slice.
func (v *Vector[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Data())
}
