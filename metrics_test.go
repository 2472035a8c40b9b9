package smallvec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector_SharedAcrossGoroutines(t *testing.T) {
	m := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine owns its vector; only the collector is shared.
			v := New[int, [2]int](WithMetrics(m))
			for i := range 100 + g {
				if err := v.PushBack(i); err != nil {
					t.Error(err)
					return
				}
			}
			v.Clear()
		}()
	}
	wg.Wait()

	stats := m.GetStats()
	assert.Positive(t, stats.GrowCount)
	assert.Equal(t, int64(8), stats.ShrinkCount)
	assert.GreaterOrEqual(t, stats.MaxCapacity, int64(107))
}

func TestBasicMetricsCollector_AllocFailures(t *testing.T) {
	m := &BasicMetricsCollector{}
	v := New[int, [2]int](WithMetrics(m))

	require.Error(t, v.Reserve(int(^uint(0)>>1)))
	assert.Equal(t, int64(1), m.GetStats().AllocFailures)
	assert.Zero(t, m.GetStats().GrowCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordGrow(1, 2)
	m.RecordShrink(2, 1)
	m.RecordAllocFailure(3, ErrAllocation)
}
