package flowgen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/axiestudio/flowgen/pkg/flowgen/config"
)

// Position is a node's location on the editor canvas.
// Positions are cosmetic only and never affect validity.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one component instance in a generated graph.
type Node struct {
	InstanceID  string         `json:"instance_id"`
	TypeID      string         `json:"type_id"`
	DisplayName string         `json:"display_name"`
	Position    Position       `json:"position"`
	Config      map[string]any `json:"config"`
}

// Settings returns a typed view over the node's config, with the
// component defaults and any template overrides already merged in.
func (n *Node) Settings() config.Config {
	return config.New(n.Config)
}

// Edge is one typed connection in a generated graph.
type Edge struct {
	EdgeID           string `json:"edge_id"`
	SourceInstanceID string `json:"source_instance_id"`
	SourcePort       string `json:"source_port"`
	TargetInstanceID string `json:"target_instance_id"`
	TargetPort       string `json:"target_port"`
}

// GeneratedGraph is the output document of one generation request.
// It is owned entirely by the caller once returned; the library keeps no
// reference to it. The JSON shape, with top-level nodes and edges arrays,
// is the compatibility contract with the downstream flow editor.
type GeneratedGraph struct {
	GraphID     string `json:"graph_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Nodes       []Node `json:"nodes"`
	Edges       []Edge `json:"edges"`
	// Warnings are non-fatal resolution notes, such as hints that named
	// no known component and were dropped.
	Warnings []string `json:"warnings,omitempty"`
}

// EdgeID derives the identifier for an edge from its four endpoint
// fields: sha256 over the unit-separator-joined fields, truncated to 16
// hex characters. Re-deriving is idempotent, and two edges in one graph
// collide only if all four endpoints are equal, in which case they are
// the same edge.
func EdgeID(sourceInstanceID, sourcePort, targetInstanceID, targetPort string) string {
	sum := sha256.Sum256([]byte(
		sourceInstanceID + "\x1f" + sourcePort + "\x1f" + targetInstanceID + "\x1f" + targetPort,
	))
	return "edge-" + hex.EncodeToString(sum[:8])
}

// newEdge builds an edge with its derived id.
func newEdge(sourceInstanceID, sourcePort, targetInstanceID, targetPort string) Edge {
	return Edge{
		EdgeID:           EdgeID(sourceInstanceID, sourcePort, targetInstanceID, targetPort),
		SourceInstanceID: sourceInstanceID,
		SourcePort:       sourcePort,
		TargetInstanceID: targetInstanceID,
		TargetPort:       targetPort,
	}
}

// idGen hands out instance ids unique within one graph, combining the
// component type with a per-graph monotonic counter.
type idGen struct {
	n int
}

func (g *idGen) next(typeID string) string {
	g.n++
	return fmt.Sprintf("%s-%d", typeID, g.n)
}

// Node returns the node with the given instance id.
func (g *GeneratedGraph) Node(instanceID string) (*Node, bool) {
	for i := range g.Nodes {
		if g.Nodes[i].InstanceID == instanceID {
			return &g.Nodes[i], true
		}
	}
	return nil, false
}

// EntryPoints returns the instance ids of nodes with no incoming edges.
func (g *GeneratedGraph) EntryPoints() []string {
	return g.boundary(func(e Edge) string { return e.TargetInstanceID })
}

// ExitPoints returns the instance ids of nodes with no outgoing edges.
func (g *GeneratedGraph) ExitPoints() []string {
	return g.boundary(func(e Edge) string { return e.SourceInstanceID })
}

// boundary returns nodes not appearing on the given side of any edge,
// in node order.
func (g *GeneratedGraph) boundary(side func(Edge) string) []string {
	connected := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		connected[side(e)] = struct{}{}
	}
	var ids []string
	for _, n := range g.Nodes {
		if _, ok := connected[n.InstanceID]; !ok {
			ids = append(ids, n.InstanceID)
		}
	}
	return ids
}

// Export serializes the graph as an indented JSON document.
func (g *GeneratedGraph) Export() ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export graph: %w", err)
	}
	return data, nil
}
