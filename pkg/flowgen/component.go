package flowgen

// TypeTag identifies the kind of value a port carries.
// Tags are opaque strings; two ports are compatible when their tags match
// or either side is the wildcard TypeAny.
type TypeTag string

// Well-known type tags. Sources may declare additional tags; unknown tags
// still participate in exact-match compatibility.
const (
	// TypeAny is the wildcard tag, compatible with every other tag.
	// Ports with absent or ambiguous declared types default to it.
	TypeAny TypeTag = "Any"

	TypeMessage       TypeTag = "Message"
	TypeText          TypeTag = "Text"
	TypeLanguageModel TypeTag = "LanguageModel"
	TypeTool          TypeTag = "Tool"
	TypeData          TypeTag = "Data"
	TypeEmbeddings    TypeTag = "Embeddings"
	TypeRetriever     TypeTag = "Retriever"
)

// Compatible reports whether a value produced with tag produced may be
// delivered to an input accepting the given tags. The check is total:
// the wildcard matches everything on either side.
func Compatible(produced TypeTag, accepted []TypeTag) bool {
	if produced == TypeAny {
		return true
	}
	for _, a := range accepted {
		if a == TypeAny || a == produced {
			return true
		}
	}
	return false
}

// Category groups components in the fixed taxonomy.
type Category string

// The component taxonomy.
const (
	CategoryInputOutput Category = "input_output"
	CategoryModel       Category = "model"
	CategoryAgent       Category = "agent"
	CategoryVectorStore Category = "vector_store"
	CategoryTool        Category = "tool"
	CategoryData        Category = "data"
	CategoryLogic       Category = "logic"
	CategoryEmbedding   Category = "embedding"
	CategoryProcessing  Category = "processing"
)

// InputPort is a declared input on a component type.
type InputPort struct {
	// Name is the port identifier, unique within the component.
	Name string
	// Accepts is the set of type tags this port accepts.
	Accepts []TypeTag
	// Multi marks the port as accepting more than one incoming edge
	// (for example an agent's tools input).
	Multi bool
}

// OutputPort is a declared output on a component type.
type OutputPort struct {
	// Name is the port identifier, unique within the component.
	Name string
	// Produces is the type tag of values this port emits.
	Produces TypeTag
}

// ComponentRecord is the normalized metadata for one component type.
// Records are immutable after indexing and owned by the Catalog; callers
// must not mutate them.
type ComponentRecord struct {
	// TypeID is the stable unique identifier, e.g. "ChatInput".
	TypeID string
	// DisplayName is the human-readable name shown in the editor.
	DisplayName string
	// Category places the component in the taxonomy.
	Category Category
	// Description is the free-text description from the source.
	Description string
	// Inputs are the declared input ports, in declaration order.
	Inputs []InputPort
	// Outputs are the declared output ports, in declaration order.
	Outputs []OutputPort
	// Defaults is the default node config for new instances.
	Defaults map[string]any
	// Keywords are the matching tokens derived from the display name,
	// category, and description, plus any declared keywords.
	Keywords []string
}

// Input returns the input port with the given name.
func (r *ComponentRecord) Input(name string) (InputPort, bool) {
	for _, p := range r.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return InputPort{}, false
}

// Output returns the output port with the given name.
func (r *ComponentRecord) Output(name string) (OutputPort, bool) {
	for _, p := range r.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return OutputPort{}, false
}

// Summary returns the listing view of the record.
func (r *ComponentRecord) Summary() ComponentSummary {
	return ComponentSummary{
		TypeID:      r.TypeID,
		DisplayName: r.DisplayName,
		Category:    r.Category,
		Description: r.Description,
	}
}

// ComponentSummary is the listing view of a component record, exposed to
// callers via ListComponents and to external classifiers.
type ComponentSummary struct {
	TypeID      string   `json:"type_id"`
	DisplayName string   `json:"display_name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}
