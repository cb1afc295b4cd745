package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records flow generation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordGeneration records one generation request with its outcome.
	RecordGeneration(ctx context.Context, archetype string, success bool, duration time.Duration)

	// RecordValidation records a validator run and its violation count.
	RecordValidation(ctx context.Context, violations int)

	// RecordCatalogBuild records a catalog (re)build.
	RecordCatalogBuild(ctx context.Context, components, templates, skipped int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	generations     metric.Int64Counter
	generateLatency metric.Float64Histogram
	violations      metric.Int64Counter
	catalogBuilds   metric.Int64Counter
	catalogSize     metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance on the global meter
// provider.
func newOtelMetrics() (*otelMetrics, error) {
	return newOtelMetricsWithMeter(otel.Meter("flowgen"))
}

// newOtelMetricsWithMeter creates the instrument set on a specific meter.
func newOtelMetricsWithMeter(meter metric.Meter) (*otelMetrics, error) {
	generations, err := meter.Int64Counter("flowgen.generate.count",
		metric.WithDescription("Number of generation requests"),
	)
	if err != nil {
		return nil, err
	}

	generateLatency, err := meter.Float64Histogram("flowgen.generate.latency_ms",
		metric.WithDescription("Generation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	violations, err := meter.Int64Counter("flowgen.validation.violations",
		metric.WithDescription("Number of structural violations reported"),
	)
	if err != nil {
		return nil, err
	}

	catalogBuilds, err := meter.Int64Counter("flowgen.catalog.builds",
		metric.WithDescription("Number of catalog builds"),
	)
	if err != nil {
		return nil, err
	}

	catalogSize, err := meter.Int64Histogram("flowgen.catalog.components",
		metric.WithDescription("Components indexed per catalog build"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		generations:     generations,
		generateLatency: generateLatency,
		violations:      violations,
		catalogBuilds:   catalogBuilds,
		catalogSize:     catalogSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordGeneration records one generation request.
func (m *otelMetrics) RecordGeneration(ctx context.Context, archetype string, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("archetype", archetype),
		attribute.Bool("success", success),
	}
	m.generations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.generateLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordValidation records a validator run.
func (m *otelMetrics) RecordValidation(ctx context.Context, violations int) {
	m.violations.Add(ctx, int64(violations))
}

// RecordCatalogBuild records a catalog build.
func (m *otelMetrics) RecordCatalogBuild(ctx context.Context, components, templates, skipped int) {
	attrs := []attribute.KeyValue{
		attribute.Int("templates", templates),
		attribute.Int("skipped", skipped),
	}
	m.catalogBuilds.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.catalogSize.Record(ctx, int64(components), metric.WithAttributes(attrs...))
}
