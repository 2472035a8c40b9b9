// Package prom exports smallvec storage metrics to Prometheus.
//
//	c := prom.NewCollector(prom.Options{Namespace: "myapp"})
//	prometheus.MustRegister(c)
//
//	v := smallvec.New[int, [8]int](smallvec.WithMetrics(c))
package prom

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/smallvec"
	"github.com/hupe1980/smallvec/resource"
)

var _ smallvec.MetricsCollector = (*Collector)(nil)

// Options configures metric names.
type Options struct {
	// Namespace prefixes every metric name. Defaults to "smallvec".
	Namespace string
	// Subsystem defaults to "storage".
	Subsystem string
	// CapacityBuckets are the histogram buckets for installed heap capacities.
	// Defaults to powers of two from 16 to 65536.
	CapacityBuckets []float64
}

// Collector implements smallvec.MetricsCollector on Prometheus metrics and
// prometheus.Collector so it can be registered directly.
type Collector struct {
	grows         prometheus.Counter
	shrinks       prometheus.Counter
	allocFailures *prometheus.CounterVec
	heapCapacity  prometheus.Histogram
}

// NewCollector creates an unregistered Collector.
func NewCollector(opts Options) *Collector {
	if opts.Namespace == "" {
		opts.Namespace = "smallvec"
	}
	if opts.Subsystem == "" {
		opts.Subsystem = "storage"
	}
	if len(opts.CapacityBuckets) == 0 {
		opts.CapacityBuckets = prometheus.ExponentialBuckets(16, 2, 13)
	}

	return &Collector{
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "grows_total",
			Help:      "Total number of heap blocks installed by growth",
		}),
		shrinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "shrinks_total",
			Help:      "Total number of migrations from a heap block back to inline storage",
		}),
		allocFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "alloc_failures_total",
			Help:      "Total number of rejected heap growths",
		}, []string{"reason"}),
		heapCapacity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "heap_capacity",
			Help:      "Capacity in elements of installed heap blocks",
			Buckets:   opts.CapacityBuckets,
		}),
	}
}

// RecordGrow implements smallvec.MetricsCollector.
func (c *Collector) RecordGrow(from, to int) {
	c.grows.Inc()
	c.heapCapacity.Observe(float64(to))
}

// RecordShrink implements smallvec.MetricsCollector.
func (c *Collector) RecordShrink(from, to int) {
	c.shrinks.Inc()
}

// RecordAllocFailure implements smallvec.MetricsCollector.
func (c *Collector) RecordAllocFailure(requested int, err error) {
	c.allocFailures.WithLabelValues(failureReason(err)).Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.grows.Describe(ch)
	c.shrinks.Describe(ch)
	c.allocFailures.Describe(ch)
	c.heapCapacity.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.grows.Collect(ch)
	c.shrinks.Collect(ch)
	c.allocFailures.Collect(ch)
	c.heapCapacity.Collect(ch)
}

// failureReason keeps the label set small.
func failureReason(err error) string {
	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return "budget"
	}
	var ae *smallvec.AllocationError
	if errors.As(err, &ae) && ae.Bytes < 0 {
		return "overflow"
	}
	return "other"
}
