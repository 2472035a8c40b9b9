package smallvec

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	a := New[int, [4]int]()
	b := New[int, [4]int]()
	assert.True(t, Equal(a, b))

	pushAll(t, a, 1, 2, 3)
	assert.False(t, Equal(a, b))

	pushAll(t, b, 1, 2, 3)
	assert.True(t, Equal(a, b))

	require.NoError(t, b.Set(2, 4))
	assert.False(t, Equal(a, b))
}

func TestEqual_IgnoresRepresentation(t *testing.T) {
	// a migrated to the heap and back, b never left the inline buffer.
	a := New[int, [4]int]()
	pushAll(t, a, 0, 1, 2, 3, 4, 5)
	require.NoError(t, a.Reserve(64))
	require.NoError(t, a.EraseRange(0, 2))

	b := New[int, [4]int]()
	pushAll(t, b, 2, 3, 4, 5)
	assert.True(t, Equal(a, b))

	// Heap-backed against inline-backed with a different N.
	c := New[int, [16]int]()
	for i := range 6 {
		require.NoError(t, c.PushBack(i))
	}
	d := New[int, [2]int]()
	for i := range 6 {
		require.NoError(t, d.PushBack(i))
	}
	assert.False(t, c.OnHeap())
	assert.True(t, d.OnHeap())
	assert.True(t, Equal(c, d))
	assert.True(t, Equal(d, c))
}

func TestEqualFunc(t *testing.T) {
	a, err := FromSlice[int, [2]int]([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := FromSlice[string, [8]string]([]string{"1", "2", "3"})
	require.NoError(t, err)

	eq := func(x int, s string) bool { return strconv.Itoa(x) == s }
	assert.True(t, EqualFunc(a, b, eq))

	require.NoError(t, b.PushBack("4"))
	assert.False(t, EqualFunc(a, b, eq))
}
