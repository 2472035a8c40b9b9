package smallvec

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/smallvec/codec"
)

func TestVector_JSON(t *testing.T) {
	v := New[int, [4]int]()
	for i := range 6 {
		require.NoError(t, v.PushBack(i))
	}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `[0,1,2,3,4,5]`, string(data))

	empty, err := json.Marshal(New[int, [4]int]())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))

	w := New[int, [4]int]()
	require.NoError(t, json.Unmarshal(data, w))
	assert.True(t, Equal(v, w))
	assert.True(t, w.OnHeap())

	require.NoError(t, json.Unmarshal([]byte(`[9]`), w))
	assert.Equal(t, []int{9}, w.Data())
	assert.False(t, w.OnHeap())
}

func TestVector_JSONField(t *testing.T) {
	type doc struct {
		Name string                    `json:"name"`
		Tags Vector[string, [4]string] `json:"tags"`
	}

	var in doc
	in.Name = "x"
	require.NoError(t, in.Tags.Append("a", "b"))

	data, err := json.Marshal(&in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","tags":["a","b"]}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, []string{"a", "b"}, out.Tags.Data())
}

func TestVector_JSONPointerField(t *testing.T) {
	type doc struct {
		Tags *Vector[string, [4]string] `json:"tags"`
	}

	tags, err := FromSlice[string, [4]string]([]string{"a", "b"})
	require.NoError(t, err)

	// A *Vector field encodes as an array even when doc is passed by value.
	data, err := json.Marshal(doc{Tags: tags})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["a","b"]}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.Tags)
	assert.Equal(t, []string{"a", "b"}, out.Tags.Data())
}

func TestVector_EncodeDecode(t *testing.T) {
	codecs := []codec.Codec{
		nil,
		codec.JSON{},
		codec.GoJSON{},
		codec.CBOR{},
		codec.Compressed{Inner: codec.CBOR{}, Algorithm: codec.Zstd},
		codec.Compressed{Inner: codec.JSON{}, Algorithm: codec.LZ4},
	}

	for _, n := range []int{0, 3, 40} {
		v := New[string, [4]string]()
		for i := range n {
			require.NoError(t, v.PushBack(fmt.Sprintf("item-%d", i)))
		}

		for _, c := range codecs {
			name := "default"
			if c != nil {
				name = c.Name()
			}
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				data, err := v.Encode(c)
				require.NoError(t, err)

				w := New[string, [8]string]()
				require.NoError(t, w.Decode(c, data))
				assert.Equal(t, v.Data(), w.Data())
				require.NoError(t, w.CheckInvariants())
			})
		}
	}
}

func TestVector_DecodeFailureLeavesVectorUnchanged(t *testing.T) {
	v := New[int, [4]int]()
	pushAll(t, v, 1, 2, 3)

	err := v.Decode(codec.JSON{}, []byte(`[1, "two"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode with json")
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	require.Error(t, v.Decode(codec.CBOR{}, []byte{0xff}))
	assert.Equal(t, []int{1, 2, 3}, v.Data())
}

func TestVector_EncodeError(t *testing.T) {
	v := New[chan int, [2]chan int]()
	require.NoError(t, v.PushBack(make(chan int)))

	_, err := v.Encode(codec.JSON{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode with json")
}

func TestVector_CBORDeterministic(t *testing.T) {
	a, err := FromSlice[int, [2]int]([]int{3, 1, 2})
	require.NoError(t, err)
	b, err := FromSlice[int, [8]int]([]int{3, 1, 2})
	require.NoError(t, err)

	ea, err := a.Encode(codec.CBOR{})
	require.NoError(t, err)
	eb, err := b.Encode(codec.CBOR{})
	require.NoError(t, err)
	assert.Equal(t, ea, eb)
}

func TestVector_Format(t *testing.T) {
	v := New[int, [4]int]()
	pushAll(t, v, 1, 2, 3)

	assert.Equal(t, "[1 2 3]", fmt.Sprintf("%v", v))
	assert.Equal(t, "[1 2 3]", fmt.Sprint(v))
	assert.Equal(t, "[01 02 03]", fmt.Sprintf("%02d", v))
	assert.Equal(t, "[]", fmt.Sprintf("%v", New[int, [4]int]()))
}
