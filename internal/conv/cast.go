package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToInt64 converts a non-negative int to int64.
func IntToInt64(v int) (int64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be used as a size (negative)", v)
	}
	return int64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// ByteSize returns count*elemSize as int64, failing when the product
// does not fit or count is negative.
func ByteSize(count int, elemSize uintptr) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("integer overflow: negative element count %d", count)
	}
	hi, lo := bits.Mul64(uint64(count), uint64(elemSize))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes exceed the addressable size", count, elemSize)
	}
	return int64(lo), nil
}

// SaturatingAdd returns a+b, clamped to math.MaxInt. Both operands must be
// non-negative.
func SaturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
