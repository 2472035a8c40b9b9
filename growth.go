package smallvec

import "github.com/hupe1980/smallvec/internal/conv"

// GrowthPolicy returns the heap capacity allocated when a vector with the
// given inline capacity needs room for minSize elements.
//
// The result grows geometrically by a factor of 1.5 over minSize, is never
// below minSize, is always strictly above inline (so a heap-backed vector
// always reports a capacity larger than its inline buffer) and is monotonic
// in minSize. It saturates at math.MaxInt.
func GrowthPolicy(minSize, inline int) int {
	c := conv.SaturatingAdd(minSize, minSize/2)
	if c <= inline {
		c = inline + 1
	}
	return c
}
