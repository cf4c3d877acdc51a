package dynvec

import (
	"github.com/hupe1980/dynvec/resource"
)

// options is shared, read-only state attached to vectors at construction.
// Vectors built by Clone share their parent's options.
type options struct {
	logger     *Logger
	controller *resource.Controller
	metrics    MetricsCollector
}

// Option configures a vector at construction time.
type Option func(*options)

var defaultOptions = &options{
	logger:  NoopLogger(),
	metrics: NoopMetricsCollector{},
}

func newOptions(opts []Option) *options {
	if len(opts) == 0 {
		return defaultOptions
	}

	o := *defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &o
}

// WithLogger attaches a logger. Reallocations are logged at debug level and
// refused allocations at warn level.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithResourceController charges buffer memory against rc. Several vectors
// may share one controller to enforce a common budget.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithMemoryLimit sets a private memory budget in bytes for the vector.
// If set to 0, memory is unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.controller = resource.NewController(resource.Config{
			MemoryLimitBytes: bytes,
		})
	}
}

// WithMetricsCollector sets the collector notified of buffer lifecycle events.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}
