package flowgen

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/axiestudio/flowgen/pkg/flowgen/source"
)

// validCategories is the fixed taxonomy accepted from component sources.
var validCategories = map[Category]struct{}{
	CategoryInputOutput: {},
	CategoryModel:       {},
	CategoryAgent:       {},
	CategoryVectorStore: {},
	CategoryTool:        {},
	CategoryData:        {},
	CategoryLogic:       {},
	CategoryEmbedding:   {},
	CategoryProcessing:  {},
}

// Catalog is the indexed knowledge base of component types and starter
// templates. A Catalog is immutable once built and safe for unlimited
// concurrent readers; rebuilds produce a fresh Catalog swapped in via a
// Holder.
type Catalog struct {
	components map[string]*ComponentRecord
	order      []string          // sorted type ids, for stable listing
	aliases    map[string]string // normalized alias -> type id
	templates  map[Archetype]*TemplateGraph
	archetypes []Archetype // loaded archetypes in declaration order
}

// buildConfig holds options for BuildCatalog.
type buildConfig struct {
	logger *slog.Logger
}

// BuildOption configures catalog building.
type BuildOption func(*buildConfig)

// WithBuildLogger sets the logger used to report skipped sources.
// Defaults to slog.Default().
func WithBuildLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// BuildCatalog indexes component and template source documents into a
// Catalog. Malformed or inconsistent sources are skipped with a warning
// rather than aborting the build, so the catalog always has best-effort
// coverage. Returns ErrNoUsableSources when no component survives.
func BuildCatalog(components []source.ComponentDoc, templates []source.TemplateDoc, opts ...BuildOption) (*Catalog, error) {
	cfg := buildConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cat := &Catalog{
		components: make(map[string]*ComponentRecord, len(components)),
		aliases:    make(map[string]string, len(components)*2),
		templates:  make(map[Archetype]*TemplateGraph, len(templates)),
	}

	for _, doc := range components {
		rec, err := newComponentRecord(doc)
		if err != nil {
			cfg.logger.Warn("skipping component source",
				slog.String("type_id", doc.TypeID),
				slog.String("error", err.Error()))
			continue
		}
		if _, exists := cat.components[rec.TypeID]; exists {
			cfg.logger.Warn("skipping duplicate component type",
				slog.String("type_id", rec.TypeID))
			continue
		}
		cat.components[rec.TypeID] = rec
		cat.order = append(cat.order, rec.TypeID)
		cat.addAlias(rec.TypeID, rec.TypeID)
		cat.addAlias(rec.DisplayName, rec.TypeID)
	}
	if len(cat.components) == 0 {
		return nil, ErrNoUsableSources
	}
	sort.Strings(cat.order)

	for _, doc := range templates {
		tmpl, err := cat.newTemplateGraph(doc)
		if err != nil {
			cfg.logger.Warn("skipping template source",
				slog.String("archetype", doc.Archetype),
				slog.String("name", doc.Name),
				slog.String("error", err.Error()))
			continue
		}
		if _, exists := cat.templates[tmpl.Archetype]; exists {
			cfg.logger.Warn("skipping duplicate template for archetype",
				slog.String("archetype", string(tmpl.Archetype)))
			continue
		}
		cat.templates[tmpl.Archetype] = tmpl
	}
	for _, a := range archetypeOrder {
		if _, ok := cat.templates[a]; ok {
			cat.archetypes = append(cat.archetypes, a)
		}
	}

	return cat, nil
}

// newComponentRecord normalizes one component document.
func newComponentRecord(doc source.ComponentDoc) (*ComponentRecord, error) {
	if doc.TypeID == "" {
		return nil, fmt.Errorf("missing type_id")
	}
	category := Category(strings.ToLower(doc.Category))
	if _, ok := validCategories[category]; !ok {
		return nil, fmt.Errorf("unknown category %q", doc.Category)
	}

	rec := &ComponentRecord{
		TypeID:      doc.TypeID,
		DisplayName: doc.DisplayName,
		Category:    category,
		Description: doc.Description,
		Defaults:    doc.Defaults,
		Keywords:    deriveKeywords(doc.Keywords, doc.DisplayName, doc.Category, doc.Description),
	}

	for _, p := range doc.Inputs {
		if p.Name == "" {
			return nil, fmt.Errorf("input port with empty name")
		}
		rec.Inputs = append(rec.Inputs, InputPort{
			Name:    p.Name,
			Accepts: acceptedTags(p),
			Multi:   p.Multi,
		})
	}
	for _, p := range doc.Outputs {
		if p.Name == "" {
			return nil, fmt.Errorf("output port with empty name")
		}
		rec.Outputs = append(rec.Outputs, OutputPort{
			Name:     p.Name,
			Produces: producedTag(p),
		})
	}
	return rec, nil
}

// acceptedTags resolves an input port's declared types. An absent
// declaration falls back to the wildcard so untyped ports connect rather
// than over-reject.
func acceptedTags(p source.PortDoc) []TypeTag {
	var tags []TypeTag
	for _, t := range p.Types {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, TypeTag(t))
		}
	}
	if len(tags) == 0 && strings.TrimSpace(p.Type) != "" {
		tags = append(tags, TypeTag(strings.TrimSpace(p.Type)))
	}
	if len(tags) == 0 {
		tags = []TypeTag{TypeAny}
	}
	return tags
}

// producedTag resolves an output port's declared type, defaulting to the
// wildcard.
func producedTag(p source.PortDoc) TypeTag {
	t := strings.TrimSpace(p.Type)
	if t == "" && len(p.Types) > 0 {
		t = strings.TrimSpace(p.Types[0])
	}
	if t == "" {
		return TypeAny
	}
	return TypeTag(t)
}

// newTemplateGraph normalizes and pre-validates one template document
// against the already-indexed components. A template that fails any
// structural check is rejected whole, preserving the guarantee that
// cloning a catalog template always yields a valid graph.
func (c *Catalog) newTemplateGraph(doc source.TemplateDoc) (*TemplateGraph, error) {
	archetype, ok := ParseArchetype(doc.Archetype)
	if !ok {
		return nil, fmt.Errorf("unknown archetype %q", doc.Archetype)
	}

	tmpl := &TemplateGraph{Archetype: archetype, Name: doc.Name}
	byID := make(map[string]*ComponentRecord, len(doc.Nodes))
	for _, n := range doc.Nodes {
		rec, ok := c.components[n.Type]
		if !ok {
			return nil, fmt.Errorf("node %s references unknown component %q", n.ID, n.Type)
		}
		if _, dup := byID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %q", n.ID)
		}
		byID[n.ID] = rec
		tmpl.Nodes = append(tmpl.Nodes, TemplateNode{
			InstanceID: n.ID,
			TypeID:     n.Type,
			Overrides:  n.Config,
		})
	}

	incoming := make(map[string]int)
	for _, e := range doc.Edges {
		src, ok := byID[e.Source]
		if !ok {
			return nil, fmt.Errorf("edge source %q not in template", e.Source)
		}
		tgt, ok := byID[e.Target]
		if !ok {
			return nil, fmt.Errorf("edge target %q not in template", e.Target)
		}
		out, ok := src.Output(e.SourcePort)
		if !ok {
			return nil, fmt.Errorf("source port %s.%s not declared", e.Source, e.SourcePort)
		}
		in, ok := tgt.Input(e.TargetPort)
		if !ok {
			return nil, fmt.Errorf("target port %s.%s not declared", e.Target, e.TargetPort)
		}
		if !Compatible(out.Produces, in.Accepts) {
			return nil, fmt.Errorf("edge %s.%s -> %s.%s is type-incompatible",
				e.Source, e.SourcePort, e.Target, e.TargetPort)
		}
		key := e.Target + "." + e.TargetPort
		incoming[key]++
		if incoming[key] > 1 && !in.Multi {
			return nil, fmt.Errorf("input %s receives multiple edges", key)
		}
		tmpl.Edges = append(tmpl.Edges, TemplateEdge{
			SourceInstanceID: e.Source,
			SourcePort:       e.SourcePort,
			TargetInstanceID: e.Target,
			TargetPort:       e.TargetPort,
		})
	}

	return tmpl, nil
}

// addAlias registers a normalized lookup alias. First registration wins.
func (c *Catalog) addAlias(name, typeID string) {
	alias := normalizeAlias(name)
	if alias == "" {
		return
	}
	if _, exists := c.aliases[alias]; !exists {
		c.aliases[alias] = typeID
	}
}

// normalizeAlias lower-cases a name and strips everything but letters and
// digits, so "Chat Input", "chat-input", and "ChatInput" all collide.
func normalizeAlias(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Component returns the record for an exact type id.
func (c *Catalog) Component(typeID string) (*ComponentRecord, bool) {
	rec, ok := c.components[typeID]
	return rec, ok
}

// Resolve looks up a component by type id or display name, ignoring case
// and punctuation.
func (c *Catalog) Resolve(name string) (*ComponentRecord, bool) {
	typeID, ok := c.aliases[normalizeAlias(name)]
	if !ok {
		return nil, false
	}
	return c.components[typeID], true
}

// Components returns every record ordered by type id.
func (c *Catalog) Components() []*ComponentRecord {
	records := make([]*ComponentRecord, len(c.order))
	for i, id := range c.order {
		records[i] = c.components[id]
	}
	return records
}

// Summaries returns the listing view of every component, ordered by type id.
func (c *Catalog) Summaries() []ComponentSummary {
	summaries := make([]ComponentSummary, len(c.order))
	for i, id := range c.order {
		summaries[i] = c.components[id].Summary()
	}
	return summaries
}

// Template returns the starter graph for an archetype.
func (c *Catalog) Template(a Archetype) (*TemplateGraph, bool) {
	t, ok := c.templates[a]
	return t, ok
}

// Archetypes returns the archetypes with loaded templates, in declaration
// order.
func (c *Catalog) Archetypes() []Archetype {
	out := make([]Archetype, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

// Holder publishes the current Catalog to concurrent readers.
// Rebuilds swap in a complete new catalog atomically; in-flight requests
// keep the catalog they loaded, so they never observe a partial build.
type Holder struct {
	current atomic.Pointer[Catalog]
}

// NewHolder creates a Holder publishing the given catalog.
func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.current.Store(c)
	return h
}

// Load returns the currently published catalog.
func (h *Holder) Load() *Catalog {
	return h.current.Load()
}

// Swap publishes a new catalog and returns the previous one.
// Panics if c is nil: readers must always observe a usable catalog.
func (h *Holder) Swap(c *Catalog) *Catalog {
	if c == nil {
		panic("flowgen: cannot publish nil catalog")
	}
	return h.current.Swap(c)
}
