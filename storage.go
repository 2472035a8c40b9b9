package smallvec

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"

	"github.com/hupe1980/smallvec/internal/conv"
)

// cleanupHandle returns the budget of a heap block that is dropped by the
// garbage collector together with its vector, without Clear being called.
//
// The cleanup is attached to a per-block token rather than to the block:
// small pointer-free blocks share a tiny-allocator slot with unrelated
// objects and would only be collected once all of them are.
type cleanupHandle struct {
	token *blockToken
	c     runtime.Cleanup
	armed bool
}

// blockToken holds a pointer, so it is never tiny-allocated.
type blockToken struct {
	_ *blockToken
}

func (h *cleanupHandle) stop() {
	if h.armed {
		h.c.Stop()
		h.armed = false
	}
	h.token = nil
}

// Reserve makes room for at least n elements. If n exceeds the current
// capacity, a heap block of exactly n slots becomes the active store.
func (v *Vector[T, A]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.growTo(n)
}

// reserve ensures the active store holds at least minSize slots, growing
// by GrowthPolicy when it does not.
func (v *Vector[T, A]) reserve(minSize int) error {
	if minSize <= v.Cap() {
		return nil
	}
	return v.growTo(GrowthPolicy(minSize, v.InlineCap()))
}

// growTo installs a heap block of newCap slots holding the live elements.
// On failure nothing has been modified.
func (v *Vector[T, A]) growTo(newCap int) error {
	o := v.opt()

	block, bytes, err := v.allocate(newCap)
	if err != nil {
		v.stats.AllocFailures++
		o.metrics.RecordAllocFailure(newCap, err)
		if o.logger != nil {
			o.logger.LogAllocFailure(newCap, v.size, err)
		}
		return err
	}

	oldCap := v.Cap()
	fromInline := v.heap == nil

	copy(block, v.active()[:v.size])
	if fromInline {
		// Drop references held by the superseded inline slots.
		clear(v.inlineSlots())
	} else {
		v.releaseHeap()
	}

	v.heap = block
	v.heapBytes = bytes
	v.armCleanup(bytes)
	v.gen++
	v.stats.HeapAllocs++
	v.stats.Grows++

	o.metrics.RecordGrow(oldCap, newCap)
	if o.logger != nil {
		o.logger.LogGrow(oldCap, newCap, v.size, fromInline)
	}
	return nil
}

// shrinkIfPossible moves the elements back inline once they fit.
func (v *Vector[T, A]) shrinkIfPossible() {
	if v.heap == nil || v.size > v.InlineCap() {
		return
	}

	oldCap := len(v.heap)
	copy(v.inlineSlots(), v.heap[:v.size])
	v.releaseHeap()
	v.gen++
	v.stats.Shrinks++

	o := v.opt()
	o.metrics.RecordShrink(oldCap, v.InlineCap())
	if o.logger != nil {
		o.logger.LogShrink(oldCap, v.InlineCap(), v.size)
	}
}

// allocate returns a zeroed block of n slots and its byte size, charging
// the memory budget first.
func (v *Vector[T, A]) allocate(n int) ([]T, int64, error) {
	var zero T
	bytes, err := conv.ByteSize(n, unsafe.Sizeof(zero))
	// GrowthPolicy saturates at math.MaxInt when the required size overflowed.
	if err != nil || n == math.MaxInt {
		if err == nil {
			err = fmt.Errorf("capacity %d exceeds the addressable size", n)
		}
		return nil, 0, &AllocationError{Requested: n, Bytes: -1, cause: err}
	}

	acquirer := v.opt().acquirer
	if acquirer != nil {
		if err := acquirer.AcquireMemory(bytes); err != nil {
			return nil, 0, &AllocationError{Requested: n, Bytes: bytes, cause: err}
		}
	}

	block, err := makeBlock[T](n)
	if err != nil {
		if acquirer != nil {
			acquirer.ReleaseMemory(bytes)
		}
		return nil, 0, &AllocationError{Requested: n, Bytes: bytes, cause: err}
	}
	return block, bytes, nil
}

// releaseHeap drops the heap block and returns its bytes to the budget.
// The inline buffer becomes the active store.
func (v *Vector[T, A]) releaseHeap() {
	if v.heap == nil {
		return
	}
	v.finalize.stop()
	if acquirer := v.opt().acquirer; acquirer != nil {
		acquirer.ReleaseMemory(v.heapBytes)
	}
	v.heap = nil
	v.heapBytes = 0
	v.stats.HeapFrees++
}

// armCleanup ties the budget of the current heap block to a token owned by
// v, so the bytes return to the budget when v is collected.
func (v *Vector[T, A]) armCleanup(bytes int64) {
	acquirer := v.opt().acquirer
	if acquirer == nil || bytes == 0 {
		return
	}
	token := new(blockToken)
	v.finalize = cleanupHandle{
		token: token,
		c:     runtime.AddCleanup(token, acquirer.ReleaseMemory, bytes),
		armed: true,
	}
}

// makeBlock converts the runtime's out-of-range panic for oversized slices
// into an error.
func makeBlock[T any](n int) (block []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	return make([]T, n), nil
}
