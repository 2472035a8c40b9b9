package smallvec

import (
	"iter"
	"math"
	"slices"
	"unsafe"
)

// Inline is the set of array types usable as the inline buffer of a Vector.
// The array length is the inline capacity N. Only the lengths listed here
// are accepted.
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[10]T | ~[12]T | ~[16]T | ~[24]T | ~[32]T | ~[48]T | ~[64]T |
		~[96]T | ~[128]T | ~[256]T
}

// noCopy may be embedded into structs which must not be copied
// after the first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vector is a sequence that keeps up to N elements in an inline buffer
// embedded in the Vector itself and moves them to a heap block once N is
// exceeded. N is the length of the array type A:
//
//	var v smallvec.Vector[int, [8]int] // up to 8 ints without a heap block
//
// Exactly one store is active at a time. While the vector is heap-backed the
// inline buffer is unused; when the size drops back to N or below the
// elements move back inline and the heap block is released.
//
// N must be one of the array lengths listed in Inline (1 to 8, 10, 12, 16,
// 24, 32, 48, 64, 96, 128 or 256): Go generics cannot range over arbitrary
// array lengths, so [9]T or [20]T fail to compile. Pick the next listed size.
//
// The zero value is an empty vector ready to use. A Vector must not be copied
// after first use; use Clone for a deep copy. A Vector is not safe for
// concurrent use. Its methods have pointer receivers, which also applies to
// MarshalJSON.
type Vector[T any, A Inline[T]] struct {
	noCopy noCopy

	inline    A
	heap      []T // active store iff non-nil; len(heap) is the capacity
	heapBytes int64
	size      int
	gen       uint64

	opts     *options
	stats    Stats
	finalize cleanupHandle
}

// Stats holds per-vector storage counters.
type Stats struct {
	HeapAllocs    uint64 // heap blocks installed
	HeapFrees     uint64 // heap blocks released
	Grows         uint64
	Shrinks       uint64 // migrations back to the inline buffer
	AllocFailures uint64
}

// New returns an empty, inline-backed vector.
func New[T any, A Inline[T]](opts ...Option) *Vector[T, A] {
	return &Vector[T, A]{opts: buildOptions(opts)}
}

// NewFilled returns a vector holding count copies of value.
func NewFilled[T any, A Inline[T]](count int, value T, opts ...Option) (*Vector[T, A], error) {
	if count < 0 {
		return nil, &RangeError{Op: "NewFilled", Index: count, Limit: math.MaxInt}
	}
	v := New[T, A](opts...)
	if err := v.reserve(count); err != nil {
		return nil, err
	}
	s := v.active()[:count]
	for i := range s {
		s[i] = value
	}
	v.size = count
	return v, nil
}

// FromSlice returns a vector holding a copy of values.
func FromSlice[T any, A Inline[T]](values []T, opts ...Option) (*Vector[T, A], error) {
	v := New[T, A](opts...)
	if err := v.Append(values...); err != nil {
		return nil, err
	}
	return v, nil
}

// FromRange returns a vector holding the elements in [first, last) of
// another vector. Both positions must belong to the same vector.
func FromRange[T any, A Inline[T]](first, last Position[T], opts ...Option) (*Vector[T, A], error) {
	v := New[T, A](opts...)
	if err := v.InsertRange(0, first, last); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSeq returns a vector holding the elements produced by seq.
func FromSeq[T any, A Inline[T]](seq iter.Seq[T], opts ...Option) (*Vector[T, A], error) {
	v := New[T, A](opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Clear()
			return nil, err
		}
	}
	return v, nil
}

// Clone returns a deep copy of v sharing no storage with it.
// The copy uses the same options (logger, metrics, memory budget).
func (v *Vector[T, A]) Clone() (*Vector[T, A], error) {
	c := &Vector[T, A]{opts: v.opts}
	if err := c.Assign(v.Data()...); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of elements.
func (v *Vector[T, A]) Len() int { return v.size }

// Size is an alias for Len.
func (v *Vector[T, A]) Size() int { return v.size }

// Cap returns the number of usable slots of the active store.
// It equals InlineCap while inline-backed and exceeds it while heap-backed.
func (v *Vector[T, A]) Cap() int {
	if v.heap != nil {
		return len(v.heap)
	}
	return len(v.inline)
}

// InlineCap returns N, the capacity of the inline buffer.
func (v *Vector[T, A]) InlineCap() int { return len(v.inline) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T, A]) Empty() bool { return v.size == 0 }

// OnHeap reports whether a heap block is the active store.
func (v *Vector[T, A]) OnHeap() bool { return v.heap != nil }

// Generation returns a counter that changes whenever storage migrates or
// elements are shifted or removed. Iterators remember the generation they
// were created at.
func (v *Vector[T, A]) Generation() uint64 { return v.gen }

// Stats returns the storage counters of v.
func (v *Vector[T, A]) Stats() Stats { return v.stats }

// Data returns the live elements of the active store. The slice aliases the
// vector's storage and is only valid until the next mutating call.
func (v *Vector[T, A]) Data() []T {
	return v.active()[:v.size]
}

// ToSlice returns a copy of the elements.
func (v *Vector[T, A]) ToSlice() []T {
	return slices.Clone(v.Data())
}

// At returns the element at index i.
func (v *Vector[T, A]) At(i int) (T, error) {
	if err := checkIndex("At", i, v.size); err != nil {
		var zero T
		return zero, err
	}
	return v.active()[i], nil
}

// Ptr returns a pointer to the element at index i. The pointer is only
// valid until the next mutating call.
func (v *Vector[T, A]) Ptr(i int) (*T, error) {
	if err := checkIndex("Ptr", i, v.size); err != nil {
		return nil, err
	}
	return &v.active()[i], nil
}

// Set replaces the element at index i.
func (v *Vector[T, A]) Set(i int, value T) error {
	if err := checkIndex("Set", i, v.size); err != nil {
		return err
	}
	v.active()[i] = value
	return nil
}

// Front returns the first element.
func (v *Vector[T, A]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, &EmptyError{Op: "Front"}
	}
	return v.active()[0], nil
}

// Back returns the last element.
func (v *Vector[T, A]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, &EmptyError{Op: "Back"}
	}
	return v.active()[v.size-1], nil
}

// All returns an iterator over index/value pairs in order.
func (v *Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.active()[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.active()[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs in reverse order.
func (v *Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, v.active()[i]) {
				return
			}
		}
	}
}

// inlineSlots returns a view over the whole inline buffer. It is rebuilt on
// every call and never stored, so it cannot outlive a move of the Vector.
func (v *Vector[T, A]) inlineSlots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), len(v.inline))
}

// active returns every slot of the active store.
func (v *Vector[T, A]) active() []T {
	if v.heap != nil {
		return v.heap
	}
	return v.inlineSlots()
}

func (v *Vector[T, A]) opt() *options {
	if v.opts == nil {
		return defaultOptions
	}
	return v.opts
}
