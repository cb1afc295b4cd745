package flowgen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/axiestudio/flowgen/pkg/flowgen/classify"
	"github.com/axiestudio/flowgen/pkg/flowgen/observability"
	"github.com/axiestudio/flowgen/pkg/flowgen/store"
)

// Generator is the top-level entry point: it owns the published catalog
// and runs the resolve, assemble, validate pipeline for each request.
// A Generator is safe for concurrent use.
type Generator struct {
	holder     *Holder
	logger     *slog.Logger
	metrics    observability.MetricsRecorder
	spans      observability.SpanManager
	archive    store.Store
	classifier classify.Classifier
}

// New creates a Generator over a built catalog.
//
// By default metrics and tracing are disabled, logging goes to
// slog.Default(), and no archive or classifier is attached. Use options
// to change any of these:
//
//	gen, err := flowgen.New(catalog,
//		flowgen.WithLogger(logger),
//		flowgen.WithMetrics(true),
//		flowgen.WithArchive(archive),
//	)
func New(catalog *Catalog, opts ...Option) (*Generator, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	g := &Generator{
		holder:  NewHolder(catalog),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate turns a description plus optional component hints into a
// validated flow graph.
//
// The pipeline is resolve, assemble, validate. When no hints are given
// and a classifier is attached, the classifier is consulted first; its
// failure is non-fatal and resolution falls back to keyword scoring.
// If the assembled graph fails validation and the catalog has a
// basic_chat template the request did not already use, that template is
// cloned as a fallback before giving up. Non-fatal resolution warnings,
// such as dropped unknown hints, appear on the returned graph's Warnings
// field. A validated graph is archived
// when an archive store is attached; archive failures are logged, never
// fatal.
//
// Returns ErrNilContext, ErrEmptyDescription, ErrIntentUnresolved (via
// UnresolvedError), ErrEmptySequence, or a GenerationError carrying the
// validator's violations.
func (g *Generator) Generate(ctx context.Context, description string, hints []string) (*GeneratedGraph, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	requestID := uuid.NewString()
	elapsed := observability.TimedOperation()
	ctx, span := g.spans.StartGenerateSpan(ctx, requestID)

	observability.LogGenerateStart(g.logger, requestID, len(hints))

	catalog := g.holder.Load()
	graph, archetype, err := g.generate(ctx, catalog, requestID, description, hints)
	ms := elapsed()
	g.metrics.RecordGeneration(ctx, string(archetype), err == nil, time.Duration(ms*float64(time.Millisecond)))

	if err != nil {
		observability.LogGenerateError(g.logger, requestID, err, ms)
		g.spans.EndSpanWithError(span, err)
		return nil, err
	}

	observability.LogGenerateComplete(g.logger, requestID, graph.GraphID,
		string(archetype), len(graph.Nodes), len(graph.Edges), ms)
	g.spans.EndSpanWithError(span, nil)

	if g.archive != nil {
		g.archiveGraph(graph)
	}
	return graph, nil
}

// generate runs the pipeline stages against one catalog snapshot.
func (g *Generator) generate(ctx context.Context, catalog *Catalog, requestID, description string, hints []string) (*GeneratedGraph, Archetype, error) {
	if len(hints) == 0 && g.classifier != nil {
		hints = g.classify(ctx, requestID, catalog, description)
	}

	_, span := g.spans.StartStageSpan(ctx, "resolve")
	resolver := NewResolver(catalog, observability.EnrichLogger(g.logger, requestID, "resolve"))
	intent, err := resolver.Resolve(description, hints)
	g.spans.EndSpanWithError(span, err)
	if err != nil {
		return nil, "", err
	}

	_, span = g.spans.StartStageSpan(ctx, "assemble")
	assembler := NewAssembler(catalog)
	graph, err := assembler.Assemble(intent)
	g.spans.EndSpanWithError(span, err)
	if err != nil {
		return nil, intent.Archetype, err
	}
	graph.Description = description

	_, span = g.spans.StartStageSpan(ctx, "validate")
	validator := NewValidator(catalog)
	result := validator.Validate(graph)
	g.metrics.RecordValidation(ctx, len(result.Violations))
	g.spans.EndSpanWithError(span, nil)
	if result.OK {
		return graph, intent.Archetype, nil
	}

	observability.LogValidationFailure(g.logger, requestID, graph.GraphID, len(result.Violations))

	// One structural retry: the basic_chat template is pre-validated, so
	// cloning it always yields a valid graph. Skip when the failed graph
	// already came from that archetype.
	if intent.Archetype != ArchetypeBasicChat {
		if tmpl, ok := catalog.Template(ArchetypeBasicChat); ok {
			g.spans.AddSpanEvent(ctx, "fallback.basic_chat",
				attribute.String("failed_archetype", string(intent.Archetype)),
				attribute.Int("violations", len(result.Violations)),
			)
			fallback, err := assembler.Assemble(&ResolvedIntent{
				Archetype: ArchetypeBasicChat,
				Sequence:  tmpl.TypeIDs(),
				Warnings:  intent.Warnings,
			})
			if err == nil {
				fallback.Description = description
				retry := validator.Validate(fallback)
				g.metrics.RecordValidation(ctx, len(retry.Violations))
				if retry.OK {
					return fallback, ArchetypeBasicChat, nil
				}
			}
		}
	}

	return nil, intent.Archetype, &GenerationError{Stage: "validate", Violations: result.Violations}
}

// classify consults the external classifier for component hints.
// Never fatal: any failure leaves the hint list empty.
func (g *Generator) classify(ctx context.Context, requestID string, catalog *Catalog, description string) []string {
	summaries := catalog.Summaries()
	components := make([]classify.Component, len(summaries))
	for i, s := range summaries {
		components[i] = classify.Component{
			TypeID:      s.TypeID,
			DisplayName: s.DisplayName,
			Category:    string(s.Category),
			Description: s.Description,
		}
	}
	selections, err := g.classifier.Classify(ctx, description, components)
	if err != nil {
		observability.LogClassifierError(g.logger, requestID, err)
		return nil
	}
	return selections
}

// archiveGraph exports and stores a validated graph.
func (g *Generator) archiveGraph(graph *GeneratedGraph) {
	data, err := graph.Export()
	if err != nil {
		observability.LogArchiveError(g.logger, graph.GraphID, err)
		return
	}
	if err := g.archive.Save(graph.GraphID, data); err != nil {
		observability.LogArchiveError(g.logger, graph.GraphID, err)
	}
}

// ListComponents returns the catalog's component listing, ordered by
// type id.
func (g *Generator) ListComponents() []ComponentSummary {
	return g.holder.Load().Summaries()
}

// ListTemplates returns the archetypes with loaded starter templates.
func (g *Generator) ListTemplates() []Archetype {
	return g.holder.Load().Archetypes()
}

// Catalog returns the currently published catalog.
func (g *Generator) Catalog() *Catalog {
	return g.holder.Load()
}

// Rebuild atomically publishes a new catalog. In-flight requests finish
// against the catalog they loaded; new requests see the new one.
func (g *Generator) Rebuild(ctx context.Context, catalog *Catalog) error {
	if catalog == nil {
		return errors.New("catalog cannot be nil")
	}
	g.holder.Swap(catalog)
	g.metrics.RecordCatalogBuild(ctx, len(catalog.Components()), len(catalog.Archetypes()), 0)
	g.logger.Info("catalog rebuilt",
		slog.Int("components", len(catalog.Components())),
		slog.Int("templates", len(catalog.Archetypes())),
	)
	return nil
}
