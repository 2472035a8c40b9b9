// Package resource implements a memory budget for container heap blocks.
//
// A Controller tracks the bytes of heap storage charged to it and, when a
// limit is configured, rejects acquisitions that would exceed it. Rejection
// is non-blocking and fail-fast: AcquireMemory returns
// ErrMemoryLimitExceeded immediately and the caller decides what to do.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 20, // 1MiB for all vectors sharing rc
//	})
//
//	v := smallvec.New[int, [8]int](smallvec.WithMemoryAcquirer(rc))
//	if err := v.Append(values...); err != nil {
//	    // errors.Is(err, smallvec.ErrAllocation)
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one budget can be
// shared by many containers owned by different goroutines.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
