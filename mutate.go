package smallvec

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"unsafe"
)

// PushBack appends value.
func (v *Vector[T, A]) PushBack(value T) error {
	if err := v.reserve(v.size + 1); err != nil {
		return err
	}
	v.active()[v.size] = value
	v.size++
	return nil
}

// Append appends values with a single capacity check.
func (v *Vector[T, A]) Append(values ...T) error {
	return v.InsertSlice(v.size, values...)
}

// PopBack removes and returns the last element.
func (v *Vector[T, A]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, &EmptyError{Op: "PopBack"}
	}
	s := v.active()
	last := s[v.size-1]
	s[v.size-1] = zero
	v.size--
	v.gen++
	v.shrinkIfPossible()
	return last, nil
}

// Insert inserts value before index pos. pos must lie in [0, Len()];
// inserting at Len() appends.
func (v *Vector[T, A]) Insert(pos int, value T) error {
	if err := checkIndex("Insert", pos, v.size+1); err != nil {
		return err
	}
	if err := v.reserve(v.size + 1); err != nil {
		return err
	}
	s := v.active()[:v.size+1]
	copy(s[pos+1:], s[pos:v.size])
	s[pos] = value
	v.size++
	v.gen++
	return nil
}

// InsertAt inserts value before the element under it and returns an
// iterator to the inserted element. it must be a current iterator of v.
func (v *Vector[T, A]) InsertAt(it Iterator[T, A], value T) (Iterator[T, A], error) {
	pos, err := v.resolve("InsertAt", it, v.size+1)
	if err != nil {
		return Iterator[T, A]{}, err
	}
	if err := v.Insert(pos, value); err != nil {
		return Iterator[T, A]{}, err
	}
	return Iterator[T, A]{v.cursorAt(pos)}, nil
}

// InsertSlice inserts values before index pos, in order. The result equals
// inserting them one at a time, but storage grows at most once and the tail
// is shifted once. values may alias v's own storage.
func (v *Vector[T, A]) InsertSlice(pos int, values ...T) error {
	if err := checkIndex("InsertSlice", pos, v.size+1); err != nil {
		return err
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	if v.size > math.MaxInt-n {
		return &AllocationError{
			Requested: math.MaxInt,
			Bytes:     -1,
			cause:     fmt.Errorf("size %d plus %d elements overflows", v.size, n),
		}
	}
	if overlaps(values, v.active()) {
		values = slices.Clone(values)
	}

	newSize := v.size + n
	if err := v.reserve(newSize); err != nil {
		return err
	}
	s := v.active()[:newSize]
	copy(s[pos+n:], s[pos:v.size])
	copy(s[pos:], values)
	v.size = newSize
	v.gen++
	return nil
}

// InsertRange inserts the elements in [first, last) before index pos.
// first and last must belong to the same vector, which may be v itself.
func (v *Vector[T, A]) InsertRange(pos int, first, last Position[T]) error {
	src, err := rangeOf(first, last)
	if err != nil {
		return err
	}
	return v.InsertSlice(pos, src...)
}

// InsertSeq inserts the elements produced by seq before index pos.
//
// seq is consumed exactly once and buffered before v is modified, so
// single-use sequences are supported and a failure leaves v unchanged.
func (v *Vector[T, A]) InsertSeq(pos int, seq iter.Seq[T]) error {
	if err := checkIndex("InsertSeq", pos, v.size+1); err != nil {
		return err
	}
	var buf Vector[T, [16]T]
	for x := range seq {
		if err := buf.PushBack(x); err != nil {
			return err
		}
	}
	return v.InsertSlice(pos, buf.Data()...)
}

// Erase removes the element at index pos.
func (v *Vector[T, A]) Erase(pos int) error {
	if err := checkIndex("Erase", pos, v.size); err != nil {
		return err
	}
	v.remove(pos, pos+1)
	return nil
}

// EraseAt removes the element under it and returns an iterator to the
// element that followed it (End if it was the last one).
func (v *Vector[T, A]) EraseAt(it Iterator[T, A]) (Iterator[T, A], error) {
	pos, err := v.resolve("EraseAt", it, v.size)
	if err != nil {
		return Iterator[T, A]{}, err
	}
	v.remove(pos, pos+1)
	return Iterator[T, A]{v.cursorAt(pos)}, nil
}

// EraseRange removes the elements at indices [first, last). It is a no-op
// if first == last.
func (v *Vector[T, A]) EraseRange(first, last int) error {
	if err := checkIndex("EraseRange", first, v.size+1); err != nil {
		return err
	}
	if err := checkIndex("EraseRange", last, v.size+1); err != nil {
		return err
	}
	if last < first {
		return &RangeError{Op: "EraseRange", Index: first, Limit: last + 1}
	}
	if first == last {
		return nil
	}
	v.remove(first, last)
	return nil
}

// EraseIterRange removes the elements in [first, last) and returns an
// iterator to the element that followed the range.
func (v *Vector[T, A]) EraseIterRange(first, last Iterator[T, A]) (Iterator[T, A], error) {
	lo, err := v.resolve("EraseIterRange", first, v.size+1)
	if err != nil {
		return Iterator[T, A]{}, err
	}
	hi, err := v.resolve("EraseIterRange", last, v.size+1)
	if err != nil {
		return Iterator[T, A]{}, err
	}
	if err := v.EraseRange(lo, hi); err != nil {
		return Iterator[T, A]{}, err
	}
	return Iterator[T, A]{v.cursorAt(lo)}, nil
}

// Clear removes all elements and releases the heap block, if any.
func (v *Vector[T, A]) Clear() {
	clear(v.active()[:v.size])
	if v.heap != nil {
		oldCap := len(v.heap)
		v.releaseHeap()
		v.stats.Shrinks++

		o := v.opt()
		o.metrics.RecordShrink(oldCap, v.InlineCap())
		if o.logger != nil {
			o.logger.LogShrink(oldCap, v.InlineCap(), 0)
		}
	}
	v.size = 0
	v.gen++
}

// Assign replaces the contents of v with values. values may alias v's own
// storage. On failure v is unchanged.
func (v *Vector[T, A]) Assign(values ...T) error {
	if overlaps(values, v.active()) {
		values = slices.Clone(values)
	}
	if err := v.reserve(len(values)); err != nil {
		return err
	}
	s := v.active()
	copy(s, values)
	if len(values) < v.size {
		clear(s[len(values):v.size])
	}
	v.size = len(values)
	v.gen++
	v.shrinkIfPossible()
	return nil
}

// remove deletes [first, last), zeroes the vacated tail slots and shrinks
// back inline when possible.
func (v *Vector[T, A]) remove(first, last int) {
	s := v.active()
	n := last - first
	copy(s[first:], s[last:v.size])
	clear(s[v.size-n : v.size])
	v.size -= n
	v.gen++
	v.shrinkIfPossible()
}

// rangeOf returns the live elements in [first, last).
func rangeOf[T any](first, last Position[T]) ([]T, error) {
	if first == nil || last == nil || first.owner() != last.owner() {
		return nil, ErrForeignIterator
	}
	if first.stale() || last.stale() {
		return nil, ErrStaleIterator
	}
	elems := first.elems()
	lo, hi := first.Index(), last.Index()
	if err := checkIndex("range", lo, len(elems)+1); err != nil {
		return nil, err
	}
	if err := checkIndex("range", hi, len(elems)+1); err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, &RangeError{Op: "range", Index: lo, Limit: hi + 1}
	}
	return elems[lo:hi], nil
}

// overlaps reports whether a and b share any backing memory.
func overlaps[T any](a, b []T) bool {
	var zero T
	size := unsafe.Sizeof(zero)
	if len(a) == 0 || len(b) == 0 || size == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}
