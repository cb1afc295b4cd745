package benchmarks

import (
	"context"
	"testing"

	"github.com/axiestudio/flowgen/pkg/flowgen"
	"github.com/axiestudio/flowgen/pkg/flowgen/source"
)

// benchCatalog builds the builtin catalog once per benchmark.
func benchCatalog(b *testing.B) *flowgen.Catalog {
	b.Helper()
	catalog, err := flowgen.BuildCatalog(source.Builtin(), source.BuiltinTemplates())
	if err != nil {
		b.Fatal(err)
	}
	return catalog
}

// BenchmarkBuildCatalog measures indexing the builtin sources.
func BenchmarkBuildCatalog(b *testing.B) {
	components := source.Builtin()
	templates := source.BuiltinTemplates()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = flowgen.BuildCatalog(components, templates)
	}
}

// BenchmarkResolve_Hints measures hint-driven intent resolution.
func BenchmarkResolve_Hints(b *testing.B) {
	resolver := flowgen.NewResolver(benchCatalog(b), nil)
	hints := []string{"ChatInput", "LanguageModel", "ChatOutput"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = resolver.Resolve("a simple chatbot", hints)
	}
}

// BenchmarkResolve_Keywords measures keyword-fallback resolution.
func BenchmarkResolve_Keywords(b *testing.B) {
	resolver := flowgen.NewResolver(benchCatalog(b), nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = resolver.Resolve("answer questions about an uploaded pdf document", nil)
	}
}

// BenchmarkAssemble_TemplateClone measures starter template cloning.
func BenchmarkAssemble_TemplateClone(b *testing.B) {
	assembler := flowgen.NewAssembler(benchCatalog(b))
	intent := &flowgen.ResolvedIntent{
		Archetype: flowgen.ArchetypeBasicChat,
		Sequence:  []string{"ChatInput", "LanguageModel", "ChatOutput"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assembler.Assemble(intent)
	}
}

// BenchmarkAssemble_Chain measures greedy chain construction.
func BenchmarkAssemble_Chain(b *testing.B) {
	assembler := flowgen.NewAssembler(benchCatalog(b))
	intent := &flowgen.ResolvedIntent{
		Archetype: flowgen.ArchetypeDataProcessing,
		Sequence:  []string{"TextInput", "AnthropicModel", "CalculatorComponent", "ChatOutput"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assembler.Assemble(intent)
	}
}

// BenchmarkValidate measures structural validation of a template clone.
func BenchmarkValidate(b *testing.B) {
	catalog := benchCatalog(b)
	assembler := flowgen.NewAssembler(catalog)
	validator := flowgen.NewValidator(catalog)
	tmplIntent := &flowgen.ResolvedIntent{
		Archetype: flowgen.ArchetypeAgentTools,
		Sequence: []string{"ChatInput", "OpenAIModel", "Agent",
			"CalculatorComponent", "WebSearchTool", "ChatOutput"},
	}
	graph, err := assembler.Assemble(tmplIntent)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.Validate(graph)
	}
}

// BenchmarkGenerate measures the full pipeline end to end.
func BenchmarkGenerate(b *testing.B) {
	gen, err := flowgen.New(benchCatalog(b))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	hints := []string{"ChatInput", "LanguageModel", "ChatOutput"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gen.Generate(ctx, "a simple chatbot", hints)
	}
}

// BenchmarkExport measures JSON document serialization.
func BenchmarkExport(b *testing.B) {
	gen, err := flowgen.New(benchCatalog(b))
	if err != nil {
		b.Fatal(err)
	}
	graph, err := gen.Generate(context.Background(),
		"answer questions about an uploaded pdf document", nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graph.Export()
	}
}
