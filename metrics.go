package smallvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the metrics/prom package for a ready-made implementation).
//
// Implementations shared between vectors must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called after a new heap block was installed.
	// from is the previous capacity (the inline capacity on first migration).
	RecordGrow(from, to int)

	// RecordShrink is called after storage migrated from a heap block back
	// to the inline buffer.
	RecordShrink(from, to int)

	// RecordAllocFailure is called when a heap block could not be provided.
	RecordAllocFailure(requested int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)           {}
func (NoopMetricsCollector) RecordShrink(int, int)         {}
func (NoopMetricsCollector) RecordAllocFailure(int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging, tests and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	ShrinkCount       atomic.Int64
	AllocFailures     atomic.Int64
	HeapSlotsAcquired atomic.Int64
	MaxCapacity       atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int) {
	b.GrowCount.Add(1)
	b.HeapSlotsAcquired.Add(int64(to))
	for {
		cur := b.MaxCapacity.Load()
		if int64(to) <= cur || b.MaxCapacity.CompareAndSwap(cur, int64(to)) {
			break
		}
	}
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(from, to int) {
	b.ShrinkCount.Add(1)
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure(requested int, err error) {
	b.AllocFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:         b.GrowCount.Load(),
		ShrinkCount:       b.ShrinkCount.Load(),
		AllocFailures:     b.AllocFailures.Load(),
		HeapSlotsAcquired: b.HeapSlotsAcquired.Load(),
		MaxCapacity:       b.MaxCapacity.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount         int64
	ShrinkCount       int64
	AllocFailures     int64
	HeapSlotsAcquired int64
	MaxCapacity       int64
}
