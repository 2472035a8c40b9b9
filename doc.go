// Package smallvec provides Vector, a sequence container that stores a small,
// fixed number of elements inline and moves to a heap block only when it
// outgrows them.
//
// # Quick Start
//
// The inline capacity N is the length of the array type parameter:
//
//	var v smallvec.Vector[int, [8]int] // zero value is ready to use
//	_ = v.PushBack(1)                  // stored inline, no heap allocation
//	_ = v.Append(2, 3, 4, 5, 6, 7, 8, 9)
//	v.OnHeap()                         // true: 9 elements exceed N = 8
//	_ = v.Erase(0)
//	v.OnHeap()                         // false: back to inline storage
//
// # Storage Model
//
// Exactly one store is active at a time: the inline buffer (Cap() == N) or a
// heap block (Cap() > N). Growth allocates a new block sized by
// GrowthPolicy, copies the live elements and drops the previous block.
// Whenever a removal brings the size back to N or below, the elements move
// back inline and the heap block is released, so vectors that oscillate
// around N do not pin heap memory.
//
// # Memory Budgets
//
// Heap blocks can be charged against a shared budget:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	v := smallvec.New[int, [8]int](smallvec.WithMemoryAcquirer(rc))
//
// A growth the budget rejects fails with an *AllocationError
// (errors.Is(err, ErrAllocation)) and leaves the vector unchanged.
//
// # Errors
//
//   - ErrOutOfRange (*RangeError): index or position outside the valid range
//   - ErrAllocation (*AllocationError): heap growth could not be provided
//   - ErrEmptyContainer (*EmptyError): PopBack, Front or Back on an empty vector
//   - ErrStaleIterator, ErrForeignIterator: invalid iterator arguments
//
// # Iterators
//
// Iterator and ConstIterator are cursors holding a logical index and the
// generation of the vector they were created from. Any call that migrates
// storage, shifts elements or removes elements invalidates them; PushBack
// invalidates them only when it migrates. Mutators that take iterators
// reject stale ones with ErrStaleIterator, and WithIteratorChecks makes
// dereferencing a stale iterator panic. For plain traversal prefer the
// range-over-func iterators All, Values and Backward.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use, including concurrent reads
// interleaved with writes. Synchronize externally.
package smallvec
