package smallvec

// Position is a location in a vector holding T. It is implemented by
// Iterator and ConstIterator of any inline capacity.
type Position[T any] interface {
	// Index returns the logical index the position refers to.
	Index() int

	owner() any
	elems() []T
	stale() bool
}

// cursor is the state shared by Iterator and ConstIterator: a logical index
// into a vector plus the generation it was created at.
//
// A cursor is invalidated by any call that migrates storage, shifts elements
// or removes elements. PushBack invalidates cursors only when it migrates.
type cursor[T any, A Inline[T]] struct {
	v   *Vector[T, A]
	pos int
	gen uint64
}

// Next moves the cursor one element forward.
func (c *cursor[T, A]) Next() { c.pos++ }

// Prev moves the cursor one element backward.
func (c *cursor[T, A]) Prev() { c.pos-- }

// Advance moves the cursor n elements (backward if n is negative).
func (c *cursor[T, A]) Advance(n int) { c.pos += n }

// Index returns the logical index of the cursor.
func (c cursor[T, A]) Index() int { return c.pos }

// Valid reports whether the cursor was created at the current generation of
// its vector and lies within [0, Len()].
func (c cursor[T, A]) Valid() bool {
	return c.v != nil && !c.stale() && c.pos >= 0 && c.pos <= c.v.size
}

// Equal reports whether both positions refer to the same slot of the same vector.
func (c cursor[T, A]) Equal(other Position[T]) bool {
	return other != nil && c.owner() == other.owner() && c.pos == other.Index()
}

// Distance returns the number of steps from c to last.
func (c cursor[T, A]) Distance(last Position[T]) int {
	return last.Index() - c.pos
}

// Value returns the element under the cursor.
//
// It panics with a *RangeError if the cursor is outside [0, Len()). With
// WithIteratorChecks enabled it also panics with ErrStaleIterator if the
// cursor is stale.
func (c cursor[T, A]) Value() T {
	return c.deref()[c.pos]
}

func (c cursor[T, A]) owner() any {
	return c.v
}

func (c cursor[T, A]) elems() []T {
	if c.v == nil {
		return nil
	}
	return c.v.Data()
}

func (c cursor[T, A]) stale() bool {
	return c.v == nil || c.gen != c.v.gen
}

// deref validates the cursor for element access and returns the live elements.
func (c cursor[T, A]) deref() []T {
	if c.v == nil {
		panic(ErrStaleIterator)
	}
	if c.v.opt().iteratorChecks && c.stale() {
		panic(ErrStaleIterator)
	}
	if c.pos < 0 || c.pos >= c.v.size {
		panic(&RangeError{Op: "iterator", Index: c.pos, Limit: c.v.size})
	}
	return c.v.Data()
}

// Iterator is a mutable cursor over a Vector.
//
// It holds no reference to storage, only a logical index, so a stale
// iterator never reads freed memory; it may however observe elements that
// were shifted under it. Treat every iterator as invalid after a call that
// migrates, shifts or removes, and enable WithIteratorChecks in tests to
// turn such misuse into panics.
type Iterator[T any, A Inline[T]] struct {
	cursor[T, A]
}

// Ptr returns a pointer to the element under the iterator, valid until the
// next mutating call.
func (it Iterator[T, A]) Ptr() *T {
	return &it.deref()[it.pos]
}

// Set replaces the element under the iterator.
func (it Iterator[T, A]) Set(value T) {
	it.deref()[it.pos] = value
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T, A]) Const() ConstIterator[T, A] {
	return ConstIterator[T, A](it)
}

// ConstIterator is a read-only cursor over a Vector.
type ConstIterator[T any, A Inline[T]] struct {
	cursor[T, A]
}

// Begin returns an iterator at the first element.
func (v *Vector[T, A]) Begin() Iterator[T, A] {
	return Iterator[T, A]{v.cursorAt(0)}
}

// End returns an iterator one past the last element.
func (v *Vector[T, A]) End() Iterator[T, A] {
	return Iterator[T, A]{v.cursorAt(v.size)}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T, A]) CBegin() ConstIterator[T, A] {
	return ConstIterator[T, A]{v.cursorAt(0)}
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T, A]) CEnd() ConstIterator[T, A] {
	return ConstIterator[T, A]{v.cursorAt(v.size)}
}

func (v *Vector[T, A]) cursorAt(pos int) cursor[T, A] {
	return cursor[T, A]{v: v, pos: pos, gen: v.gen}
}

// resolve converts an iterator argument into a logical index of v, which
// must lie in [0, limit).
func (v *Vector[T, A]) resolve(op string, p Position[T], limit int) (int, error) {
	if p == nil || p.owner() != any(v) {
		return 0, ErrForeignIterator
	}
	if p.stale() {
		return 0, ErrStaleIterator
	}
	idx := p.Index()
	if err := checkIndex(op, idx, limit); err != nil {
		return 0, err
	}
	return idx, nil
}
