package bitpool

import "log/slog"

type options struct {
	logger           *slog.Logger
	metricsCollector MetricsCollector
}

// Option configures Pool constructor behavior.
type Option func(*options)

// WithLogger configures the structured logger used for internal events
// (currently only full hierarchy rebuilds, at debug level).
//
// If nil is passed, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures the collector notified on acquire, release
// and refresh operations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func defaultOptions() options {
	return options{
		logger:           slog.New(slog.DiscardHandler),
		metricsCollector: NoopMetricsCollector{},
	}
}
