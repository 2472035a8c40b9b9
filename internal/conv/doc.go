// Package conv provides checked integer arithmetic for storage sizing.
//
// Heap blocks are charged against memory budgets in bytes, so element counts
// must be converted to byte sizes without silently wrapping. These helpers
// return an error (or saturate) instead of overflowing.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
