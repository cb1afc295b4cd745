// Package observability provides structured logging, metrics, and
// distributed tracing for the flow generation pipeline.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds generation context to a logger.
// Returns a new logger with request_id and stage fields.
func EnrichLogger(logger *slog.Logger, requestID, stage string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("request_id", requestID),
		slog.String("stage", stage),
	)
}

// LogGenerateStart logs the start of a generation request.
func LogGenerateStart(logger *slog.Logger, requestID string, hintCount int) {
	if logger == nil {
		return
	}
	logger.Info("generation starting",
		slog.String("request_id", requestID),
		slog.Int("hint_count", hintCount),
	)
}

// LogGenerateComplete logs a successful generation.
func LogGenerateComplete(logger *slog.Logger, requestID, graphID string, archetype string, nodes, edges int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("generation completed",
		slog.String("request_id", requestID),
		slog.String("graph_id", graphID),
		slog.String("archetype", archetype),
		slog.Int("nodes", nodes),
		slog.Int("edges", edges),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogGenerateError logs a failed generation.
func LogGenerateError(logger *slog.Logger, requestID string, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("generation failed",
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogValidationFailure logs a graph rejected by the validator.
func LogValidationFailure(logger *slog.Logger, requestID, graphID string, violations int) {
	if logger == nil {
		return
	}
	logger.Warn("generated graph failed validation",
		slog.String("request_id", requestID),
		slog.String("graph_id", graphID),
		slog.Int("violations", violations),
	)
}

// LogArchiveError logs a flow archive failure (non-fatal).
func LogArchiveError(logger *slog.Logger, graphID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("flow archive failed",
		slog.String("graph_id", graphID),
		slog.String("error", err.Error()),
	)
}

// LogClassifierError logs an external classifier failure (non-fatal, the
// keyword fallback still runs).
func LogClassifierError(logger *slog.Logger, requestID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("external classifier failed",
		slog.String("request_id", requestID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
