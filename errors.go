package smallvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or position lies outside the
	// valid logical range of the requested operation.
	ErrOutOfRange = errors.New("smallvec: index out of range")

	// ErrAllocation is returned when a heap block for growth cannot be provided.
	// The vector is left exactly as it was before the failed call.
	ErrAllocation = errors.New("smallvec: allocation failed")

	// ErrEmptyContainer is returned when popping from or peeking into an empty vector.
	ErrEmptyContainer = errors.New("smallvec: empty container")

	// ErrStaleIterator is reported when an iterator is used after the vector
	// it points into migrated storage or shifted elements.
	ErrStaleIterator = errors.New("smallvec: stale iterator")

	// ErrForeignIterator is returned when an iterator from another vector is
	// passed where a position in this vector is expected.
	ErrForeignIterator = errors.New("smallvec: iterator belongs to a different vector")
)

// RangeError reports an index outside the valid range of an operation.
//
// It unwraps to ErrOutOfRange.
type RangeError struct {
	Op    string
	Index int
	// Limit is the exclusive upper bound that Index violated.
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("smallvec: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// AllocationError reports a failed heap growth.
//
// It unwraps to ErrAllocation and to the underlying cause (for example
// resource.ErrMemoryLimitExceeded), so both can be matched with errors.Is.
type AllocationError struct {
	// Requested is the element capacity that could not be provided.
	Requested int
	// Bytes is the byte size of the requested block, or -1 if it overflowed.
	Bytes int64
	cause error
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("smallvec: allocation failed: capacity %d (%d bytes)", e.Requested, e.Bytes)
	}
	return fmt.Sprintf("smallvec: allocation failed: capacity %d (%d bytes): %v", e.Requested, e.Bytes, e.cause)
}

func (e *AllocationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAllocation}
	}
	return []error{ErrAllocation, e.cause}
}

// EmptyError reports an operation that needs at least one element.
//
// It unwraps to ErrEmptyContainer.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("smallvec: %s: empty container", e.Op)
}

func (e *EmptyError) Unwrap() error { return ErrEmptyContainer }

func checkIndex(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return &RangeError{Op: op, Index: index, Limit: limit}
	}
	return nil
}
