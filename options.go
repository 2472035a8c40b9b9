package smallvec

// MemoryAcquirer is an interface for acquiring memory.
//
// Heap blocks are charged against it in bytes before they are allocated and
// released when the block is dropped. *resource.Controller implements it.
//
// ReleaseMemory is also called from the runtime's cleanup goroutine for
// vectors that are collected while still heap-backed, so implementations
// must be safe for concurrent use even when every vector is confined to one
// goroutine.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

type options struct {
	logger         *Logger
	metrics        MetricsCollector
	acquirer       MemoryAcquirer
	iteratorChecks bool
}

// defaultOptions is shared by every vector created without options,
// including zero-value vectors. It is never mutated.
var defaultOptions = &options{
	metrics: NoopMetricsCollector{},
}

// Option configures a Vector.
type Option func(*options)

// WithLogger enables migration logging.
//
// Storage migrations log at debug level and allocation failures at warn level.
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics configures the collector notified about storage migrations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithMemoryAcquirer charges every heap block against the given budget.
//
// When the budget rejects a block, the mutation that needed it fails with an
// *AllocationError and the vector is left unchanged.
func WithMemoryAcquirer(a MemoryAcquirer) Option {
	return func(o *options) {
		o.acquirer = a
	}
}

// WithIteratorChecks turns on fail-fast iterator validation.
//
// With checks enabled, dereferencing an iterator that was obtained before
// the last storage migration, shift or removal panics with ErrStaleIterator,
// and dereferencing a cursor outside [0, Len()) panics with a *RangeError.
// Intended for tests and debug builds.
func WithIteratorChecks(enabled bool) Option {
	return func(o *options) {
		o.iteratorChecks = enabled
	}
}

func buildOptions(opts []Option) *options {
	if len(opts) == 0 {
		return defaultOptions
	}
	o := &options{
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
