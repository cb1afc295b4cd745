package flowgen

import (
	"log/slog"

	"github.com/axiestudio/flowgen/pkg/flowgen/classify"
	"github.com/axiestudio/flowgen/pkg/flowgen/observability"
	"github.com/axiestudio/flowgen/pkg/flowgen/store"
)

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger for the generator.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
// Disabled by default. When enabled, the generator uses the global OTel
// meter provider; configure it before creating the generator.
func WithMetrics(enabled bool) Option {
	return func(g *Generator) {
		if enabled {
			g.metrics = observability.NewMetricsRecorder()
		} else {
			g.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables or disables OpenTelemetry tracing.
// Disabled by default. When enabled, the generator uses the global OTel
// tracer provider; configure it before creating the generator.
func WithTracing(enabled bool) Option {
	return func(g *Generator) {
		if enabled {
			g.spans = observability.NewSpanManager()
		} else {
			g.spans = observability.NoopSpanManager{}
		}
	}
}

// WithArchive sets a store that receives every successfully generated
// flow document. Archive failures are logged, never fatal.
func WithArchive(s store.Store) Option {
	return func(g *Generator) {
		g.archive = s
	}
}

// WithClassifier sets an external classifier consulted when a request
// carries no component hints. Classifier failures are logged and the
// generator falls back to keyword resolution.
func WithClassifier(c classify.Classifier) Option {
	return func(g *Generator) {
		g.classifier = c
	}
}
