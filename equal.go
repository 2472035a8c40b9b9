package smallvec

import "slices"

// Equal reports whether a and b hold the same elements in the same order.
// Inline capacity and the active store are not part of equality: a
// heap-backed vector equals an inline-backed one with the same elements.
func Equal[T comparable, A Inline[T], B Inline[T]](a *Vector[T, A], b *Vector[T, B]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any, A Inline[T], B Inline[U]](a *Vector[T, A], b *Vector[U, B], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
