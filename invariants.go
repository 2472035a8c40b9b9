package smallvec

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is returned by CheckInvariants.
var ErrInvariantViolation = errors.New("smallvec: invariant violation")

// CheckInvariants verifies the storage invariants of v. It is meant for
// tests and debugging; a correct program never observes an error.
func (v *Vector[T, A]) CheckInvariants() error {
	n := v.InlineCap()
	if v.size < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvariantViolation, v.size)
	}
	if v.size > v.Cap() {
		return fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvariantViolation, v.size, v.Cap())
	}
	if v.heap == nil {
		if v.heapBytes != 0 {
			return fmt.Errorf("%w: inline-backed vector still accounts %d heap bytes", ErrInvariantViolation, v.heapBytes)
		}
		if v.finalize.armed {
			return fmt.Errorf("%w: inline-backed vector has an armed heap cleanup", ErrInvariantViolation)
		}
		return nil
	}
	if len(v.heap) <= n {
		return fmt.Errorf("%w: heap block of %d slots does not exceed inline capacity %d", ErrInvariantViolation, len(v.heap), n)
	}
	if cap(v.heap) != len(v.heap) {
		return fmt.Errorf("%w: heap block len %d != cap %d", ErrInvariantViolation, len(v.heap), cap(v.heap))
	}
	if overlaps(v.heap, v.inlineSlots()) {
		return fmt.Errorf("%w: heap block aliases the inline buffer", ErrInvariantViolation)
	}
	return nil
}
