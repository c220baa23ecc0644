package vecmath

const (
	// DefaultFloatWidth is the assumed byte width of a stored value.
	DefaultFloatWidth = 4
	// DefaultIntWidth is the assumed byte width of a stored sparse index.
	DefaultIntWidth = 8
)

type options struct {
	floatWidth       int
	intWidth         int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		floatWidth:       DefaultFloatWidth,
		intWidth:         DefaultIntWidth,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Compressor.
type Option func(*options)

// WithFloatWidth sets the per-value byte cost used in both cost formulas.
//
// Non-positive widths are ignored.
func WithFloatWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.floatWidth = n
		}
	}
}

// WithIntWidth sets the per-index byte cost used in the sparse cost formula.
//
// Non-positive widths are ignored.
func WithIntWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.intWidth = n
		}
	}
}

// WithLogger configures structured logging of compress decisions.
// Decisions are logged at debug level.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for compress decisions.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecmath.BasicMetricsCollector{}
//	c := vecmath.NewCompressor(vecmath.WithMetricsCollector(metrics))
//	_ = c.Compress(v)
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
