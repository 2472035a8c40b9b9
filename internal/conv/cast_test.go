//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToInt64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToInt64(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToInt64(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToInt64(-1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt(t *testing.T) {
	got, err := Uint64ToInt(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = Uint64ToInt(math.MaxUint64)
	assert.Error(t, err)
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		elemSize uintptr
		want     int64
		wantErr  bool
	}{
		{name: "empty", count: 0, elemSize: 8, want: 0},
		{name: "zero sized elements", count: 1 << 20, elemSize: 0, want: 0},
		{name: "ints", count: 10, elemSize: 8, want: 80},
		{name: "negative count", count: -1, elemSize: 8, wantErr: true},
		{name: "product overflows", count: math.MaxInt, elemSize: 16, wantErr: true},
		{name: "exact max", count: math.MaxInt64, elemSize: 1, want: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByteSize(tt.count, tt.elemSize)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, 5, SaturatingAdd(2, 3))
	assert.Equal(t, math.MaxInt, SaturatingAdd(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, SaturatingAdd(math.MaxInt-1, math.MaxInt-1))
}
