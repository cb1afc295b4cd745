package flowgen

import (
	"github.com/google/uuid"

	"github.com/axiestudio/flowgen/pkg/flowgen/config"
)

// Canvas layout constants. The editor re-layouts freely, so these only
// need to keep generated nodes readable.
const (
	layoutStartX        = 100.0
	layoutStartY        = 100.0
	layoutSpacingX      = 300.0
	layoutBranchOffsetY = 160.0
)

// Assembler builds a GeneratedGraph from a ResolvedIntent.
// It performs no I/O and makes no external calls; a single Assembler is
// safe for concurrent use.
type Assembler struct {
	catalog *Catalog
}

// NewAssembler creates an Assembler over the given catalog.
func NewAssembler(catalog *Catalog) *Assembler {
	return &Assembler{catalog: catalog}
}

// Assemble realizes an intent into a concrete graph.
//
// If the catalog has a template for the intent's archetype whose node
// types cover the component sequence, the template is cloned: structural
// validity then holds by construction, since templates are pre-validated
// at index time. Otherwise the graph is constructed from scratch as a
// best-effort linear chain. Resolution warnings on the intent are copied
// onto the graph. Returns ErrEmptySequence for an empty intent.
func (a *Assembler) Assemble(intent *ResolvedIntent) (*GeneratedGraph, error) {
	if intent == nil || len(intent.Sequence) == 0 {
		return nil, ErrEmptySequence
	}

	graph := &GeneratedGraph{
		GraphID: uuid.NewString(),
		Nodes:   []Node{},
		Edges:   []Edge{},
	}
	if len(intent.Warnings) > 0 {
		graph.Warnings = append([]string(nil), intent.Warnings...)
	}

	if tmpl, ok := a.catalog.Template(intent.Archetype); ok && tmpl.Covers(intent.Sequence) {
		a.cloneTemplate(tmpl, graph)
		return graph, nil
	}

	a.buildChain(intent.Sequence, graph)
	return graph, nil
}

// cloneTemplate specializes a starter graph: every node gets a fresh
// instance id and a config built from the component defaults plus the
// template overrides, and every edge is remapped through the old-to-new
// id table. The template itself is never touched.
func (a *Assembler) cloneTemplate(tmpl *TemplateGraph, graph *GeneratedGraph) {
	var gen idGen
	idMap := make(map[string]string, len(tmpl.Nodes))

	for i, tn := range tmpl.Nodes {
		rec, ok := a.catalog.Component(tn.TypeID)
		if !ok {
			// Templates are pre-validated against the same catalog.
			continue
		}
		instanceID := gen.next(tn.TypeID)
		idMap[tn.InstanceID] = instanceID
		graph.Nodes = append(graph.Nodes, Node{
			InstanceID:  instanceID,
			TypeID:      rec.TypeID,
			DisplayName: rec.DisplayName,
			Position:    a.position(i, rec),
			Config:      config.Merge(rec.Defaults, tn.Overrides),
		})
	}

	for _, te := range tmpl.Edges {
		graph.Edges = append(graph.Edges, newEdge(
			idMap[te.SourceInstanceID], te.SourcePort,
			idMap[te.TargetInstanceID], te.TargetPort,
		))
	}
}

// buildChain creates one node per sequence entry and wires a best-effort
// linear chain: for each node after the first, predecessors are scanned
// in reverse and the first output port compatible with one of the node's
// unfilled input ports wins. A node with no compatible predecessor stays
// unconnected and becomes an extra entry point; no incompatible edge is
// ever forced.
func (a *Assembler) buildChain(sequence []string, graph *GeneratedGraph) {
	var gen idGen
	records := make([]*ComponentRecord, 0, len(sequence))

	for _, typeID := range sequence {
		rec, ok := a.catalog.Component(typeID)
		if !ok {
			continue
		}
		graph.Nodes = append(graph.Nodes, Node{
			InstanceID:  gen.next(rec.TypeID),
			TypeID:      rec.TypeID,
			DisplayName: rec.DisplayName,
			Position:    a.position(len(records), rec),
			Config:      config.Merge(rec.Defaults, nil),
		})
		records = append(records, rec)
	}

	filled := make([]map[string]bool, len(records))
	for i := range filled {
		filled[i] = make(map[string]bool)
	}

	for i := 1; i < len(records); i++ {
		a.connectFirstCompatible(graph, records, filled, i)
	}
}

// connectFirstCompatible wires node i to its nearest compatible
// predecessor, if any.
func (a *Assembler) connectFirstCompatible(graph *GeneratedGraph, records []*ComponentRecord, filled []map[string]bool, i int) {
	for j := i - 1; j >= 0; j-- {
		for _, out := range records[j].Outputs {
			for _, in := range records[i].Inputs {
				if filled[i][in.Name] && !in.Multi {
					continue
				}
				if !Compatible(out.Produces, in.Accepts) {
					continue
				}
				graph.Edges = append(graph.Edges, newEdge(
					graph.Nodes[j].InstanceID, out.Name,
					graph.Nodes[i].InstanceID, in.Name,
				))
				filled[i][in.Name] = true
				return
			}
		}
	}
}

// position lays nodes out on a fixed horizontal line, with tool nodes
// dropped below it so fan-ins into agents stay legible.
func (a *Assembler) position(index int, rec *ComponentRecord) Position {
	y := layoutStartY
	if rec.Category == CategoryTool {
		y += layoutBranchOffsetY
	}
	return Position{
		X: layoutStartX + float64(index)*layoutSpacingX,
		Y: y,
	}
}
