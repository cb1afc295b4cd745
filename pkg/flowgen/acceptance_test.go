package flowgen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAcceptance_HintedChat exercises the full pipeline on the simplest
// hinted request: three components, cloned from the chat starter.
func TestAcceptance_HintedChat(t *testing.T) {
	gen := testGenerator(t)

	graph, err := gen.Generate(context.Background(), "build a simple chatbot",
		[]string{"ChatInput", "LanguageModel", "ChatOutput"})
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 3)
	require.Len(t, graph.Edges, 2)
	assert.Len(t, graph.EntryPoints(), 1)
	assert.Len(t, graph.ExitPoints(), 1)

	result := NewValidator(gen.Catalog()).Validate(graph)
	assert.True(t, result.OK, "%v", result.Violations)
}

// TestAcceptance_UnknownHintSurvives exercises a request mixing known and
// unknown hints: the unknown type is dropped, the rest still generates.
func TestAcceptance_UnknownHintSurvives(t *testing.T) {
	gen := testGenerator(t)

	graph, err := gen.Generate(context.Background(), "a chatbot",
		[]string{"ChatInput", "FluxCapacitor", "LanguageModel", "ChatOutput"})
	require.NoError(t, err)

	for _, n := range graph.Nodes {
		assert.NotEqual(t, "FluxCapacitor", n.TypeID)
	}
	require.Len(t, graph.Warnings, 1)
	assert.Contains(t, graph.Warnings[0], "FluxCapacitor")
	result := NewValidator(gen.Catalog()).Validate(graph)
	assert.True(t, result.OK, "%v", result.Violations)
}

// TestAcceptance_NonsenseFails exercises a description no archetype can
// claim: the pipeline refuses rather than guessing.
func TestAcceptance_NonsenseFails(t *testing.T) {
	gen := testGenerator(t)

	_, err := gen.Generate(context.Background(), "zzz qqq www", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntentUnresolved)
}

// TestAcceptance_IncompatibleNeighborsStayUnwired exercises a hinted
// sequence whose neighbors cannot connect: the graph is still produced
// and no type-incompatible edge appears in it.
func TestAcceptance_IncompatibleNeighborsStayUnwired(t *testing.T) {
	gen := testGenerator(t)

	graph, err := gen.Generate(context.Background(), "process some data",
		[]string{"CalculatorComponent", "TextSplitter"})
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 2)
	assert.Empty(t, graph.Edges)

	result := NewValidator(gen.Catalog()).Validate(graph)
	assert.True(t, result.OK, "%v", result.Violations)
}

// TestAcceptance_BuiltinTemplatesValidate clones every shipped template
// and validates the result: template pre-validation guarantees this.
func TestAcceptance_BuiltinTemplatesValidate(t *testing.T) {
	cat := builtinCatalog(t)
	assembler := NewAssembler(cat)
	validator := NewValidator(cat)

	for _, archetype := range cat.Archetypes() {
		t.Run(string(archetype), func(t *testing.T) {
			tmpl, ok := cat.Template(archetype)
			require.True(t, ok)

			graph, err := assembler.Assemble(&ResolvedIntent{
				Archetype: archetype,
				Sequence:  tmpl.TypeIDs(),
			})
			require.NoError(t, err)
			require.Len(t, graph.Nodes, len(tmpl.Nodes))
			require.Len(t, graph.Edges, len(tmpl.Edges))

			result := validator.Validate(graph)
			assert.True(t, result.OK, "%v", result.Violations)
		})
	}
}

// TestAcceptance_StructurallyIdempotent exercises repeat generation: the
// same request always yields the same structure, graph id aside.
func TestAcceptance_StructurallyIdempotent(t *testing.T) {
	gen := testGenerator(t)

	first, err := gen.Generate(context.Background(),
		"answer questions about an uploaded pdf document", nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := gen.Generate(context.Background(),
			"answer questions about an uploaded pdf document", nil)
		require.NoError(t, err)

		assert.NotEqual(t, first.GraphID, next.GraphID)
		require.Len(t, next.Nodes, len(first.Nodes))
		for j := range first.Nodes {
			assert.Equal(t, first.Nodes[j], next.Nodes[j])
		}
		assert.Equal(t, first.Edges, next.Edges)
	}
}

// TestAcceptance_RandomSequencesNeverMiswire assembles random component
// sequences and checks the invariants the assembler promises regardless
// of input: no dangling references, no forced incompatible edges, no
// overconnected inputs.
func TestAcceptance_RandomSequencesNeverMiswire(t *testing.T) {
	cat := builtinCatalog(t)
	assembler := NewAssembler(cat)
	validator := NewValidator(cat)

	typeIDs := make([]string, 0)
	for _, rec := range cat.Components() {
		typeIDs = append(typeIDs, rec.TypeID)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := 2 + rng.Intn(5)
		sequence := make([]string, n)
		for j := range sequence {
			sequence[j] = typeIDs[rng.Intn(len(typeIDs))]
		}

		graph, err := assembler.Assemble(&ResolvedIntent{
			Archetype: ArchetypeDataProcessing,
			Sequence:  sequence,
		})
		require.NoError(t, err, "sequence %v", sequence)

		result := validator.Validate(graph)
		for _, violation := range result.Violations {
			assert.NotEqual(t, ViolationDanglingReference, violation.Kind, "sequence %v", sequence)
			assert.NotEqual(t, ViolationTypeMismatch, violation.Kind, "sequence %v", sequence)
			assert.NotEqual(t, ViolationOverconnectedInput, violation.Kind, "sequence %v", sequence)
			assert.NotEqual(t, ViolationDuplicateID, violation.Kind, "sequence %v", sequence)
		}
	}
}
