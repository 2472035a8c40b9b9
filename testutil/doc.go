// Package testutil provides testing utilities for smallvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible random source for randomized
// model-based tests that replay the same operations against a Vector and a
// plain Go slice.
//
//	rng := testutil.NewRNG(seed)
//	op := rng.Choose([]int{50, 20, 20, 10}) // weighted operation pick
//	vals := rng.Ints(16, 1000)             // 16 values in [0, 1000)
package testutil
