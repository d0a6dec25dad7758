package geo3

import "log/slog"

type options struct {
	tolerance        float64
	parallelism      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Collection constructor behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; all of them have working defaults.
type Option func(*options)

// WithTolerance configures the eps used by the collection's distance
// computations (parallelism and degeneracy guards).
//
// Values <= 0 or NaN are ignored and the default Epsilon is kept.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.tolerance = eps
		}
	}
}

// WithParallelism configures the number of goroutines used to scan large
// collections during queries.
//
// The default of 1 keeps queries on the calling goroutine. Values above 1
// shard the scan; small collections ignore the setting since the merge
// overhead would dominate.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geo3.BasicMetricsCollector{}
//	col := geo3.NewCollection[string](geo3.WithMetricsCollector(metrics))
//	// ... use col ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.QueryCount, stats.QueryAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := geo3.NewJSONLogger(slog.LevelInfo)
//	col := geo3.NewCollection[string](geo3.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		tolerance:        Epsilon,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
