package flowgen

// Archetype labels the overall shape of a flow.
type Archetype string

// The known archetypes. Declaration order is significant: keyword-score
// ties during intent resolution break toward the earlier archetype.
const (
	ArchetypeBasicChat         Archetype = "basic_chat"
	ArchetypeDocumentQA        Archetype = "document_qa"
	ArchetypeAgentTools        Archetype = "agent_tools"
	ArchetypeDataProcessing    Archetype = "data_processing"
	ArchetypeMultiAgent        Archetype = "multi_agent"
	ArchetypeRAGSystem         Archetype = "rag_system"
	ArchetypeContentGeneration Archetype = "content_generation"
)

// archetypeOrder is the canonical declaration order used for tie-breaking
// and for listing.
var archetypeOrder = []Archetype{
	ArchetypeBasicChat,
	ArchetypeDocumentQA,
	ArchetypeAgentTools,
	ArchetypeDataProcessing,
	ArchetypeMultiAgent,
	ArchetypeRAGSystem,
	ArchetypeContentGeneration,
}

// archetypeKeywords are intrinsic matching tokens per archetype, scored
// alongside the keywords of the archetype's template components.
var archetypeKeywords = map[Archetype][]string{
	ArchetypeBasicChat:         {"chat", "chatbot", "conversation", "talk", "bot", "assistant"},
	ArchetypeDocumentQA:        {"document", "pdf", "file", "upload", "question", "answer", "qa"},
	ArchetypeAgentTools:        {"agent", "tool", "search", "calculator", "autonomous"},
	ArchetypeDataProcessing:    {"data", "process", "transform", "pipeline", "etl"},
	ArchetypeMultiAgent:        {"agents", "crew", "team", "collaborate"},
	ArchetypeRAGSystem:         {"rag", "retrieval", "knowledge", "vector", "embedding", "semantic"},
	ArchetypeContentGeneration: {"blog", "write", "writer", "content", "article", "generate"},
}

// ParseArchetype returns the archetype for its string form.
func ParseArchetype(s string) (Archetype, bool) {
	for _, a := range archetypeOrder {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// TemplateNode is one node of a starter graph.
type TemplateNode struct {
	// InstanceID identifies the node within the template only; cloning
	// always remaps it to a fresh id.
	InstanceID string
	// TypeID references a catalog component type.
	TypeID string
	// Overrides is config layered over the component's defaults.
	Overrides map[string]any
}

// TemplateEdge is one typed connection of a starter graph.
type TemplateEdge struct {
	SourceInstanceID string
	SourcePort       string
	TargetInstanceID string
	TargetPort       string
}

// TemplateGraph is a proven starter graph tagged with an archetype.
// Templates are read-only reference graphs: the assembler clones and
// specializes them, never mutates them.
type TemplateGraph struct {
	// Archetype is the flow shape this template realizes.
	Archetype Archetype
	// Name is the human-readable template name.
	Name string
	// Nodes in declaration order.
	Nodes []TemplateNode
	// Edges between template nodes.
	Edges []TemplateEdge
}

// TypeIDs returns the component types used by the template, in node order.
func (t *TemplateGraph) TypeIDs() []string {
	ids := make([]string, len(t.Nodes))
	for i, n := range t.Nodes {
		ids[i] = n.TypeID
	}
	return ids
}

// Covers reports whether the template's node types are a superset of the
// given component sequence, ignoring order.
func (t *TemplateGraph) Covers(sequence []string) bool {
	have := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		have[n.TypeID] = struct{}{}
	}
	for _, typeID := range sequence {
		if _, ok := have[typeID]; !ok {
			return false
		}
	}
	return true
}

// overlap counts how many distinct sequence types appear in the template.
func (t *TemplateGraph) overlap(sequence []string) int {
	have := make(map[string]struct{}, len(t.Nodes))
	for _, n := range t.Nodes {
		have[n.TypeID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(sequence))
	count := 0
	for _, typeID := range sequence {
		if _, dup := seen[typeID]; dup {
			continue
		}
		seen[typeID] = struct{}{}
		if _, ok := have[typeID]; ok {
			count++
		}
	}
	return count
}
