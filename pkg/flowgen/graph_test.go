package flowgen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEdgeID_Deterministic tests edge ids derive purely from endpoints.
func TestEdgeID_Deterministic(t *testing.T) {
	a := EdgeID("node-1", "out", "node-2", "in")
	b := EdgeID("node-1", "out", "node-2", "in")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "edge-"))
	assert.Len(t, a, len("edge-")+16)
}

// TestEdgeID_DistinguishesEndpoints tests that moving a boundary between
// fields changes the id.
func TestEdgeID_DistinguishesEndpoints(t *testing.T) {
	testCases := []struct {
		name string
		a    [4]string
		b    [4]string
	}{
		{"different source", [4]string{"n1", "out", "n2", "in"}, [4]string{"n9", "out", "n2", "in"}},
		{"different port", [4]string{"n1", "out", "n2", "in"}, [4]string{"n1", "out2", "n2", "in"}},
		{"shifted boundary", [4]string{"n1x", "out", "n2", "in"}, [4]string{"n1", "xout", "n2", "in"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t,
				EdgeID(tc.a[0], tc.a[1], tc.a[2], tc.a[3]),
				EdgeID(tc.b[0], tc.b[1], tc.b[2], tc.b[3]),
			)
		})
	}
}

// TestGraph_BoundaryPoints tests entry and exit point detection.
func TestGraph_BoundaryPoints(t *testing.T) {
	graph := &GeneratedGraph{
		GraphID: "g",
		Nodes: []Node{
			{InstanceID: "a"},
			{InstanceID: "b"},
			{InstanceID: "c"},
			{InstanceID: "lone"},
		},
		Edges: []Edge{
			newEdge("a", "out", "b", "in"),
			newEdge("b", "out", "c", "in"),
		},
	}

	assert.Equal(t, []string{"a", "lone"}, graph.EntryPoints())
	assert.Equal(t, []string{"c", "lone"}, graph.ExitPoints())
}

// TestGraph_Node tests instance lookup.
func TestGraph_Node(t *testing.T) {
	graph := &GeneratedGraph{Nodes: []Node{{InstanceID: "a", TypeID: "ChatInput"}}}

	n, ok := graph.Node("a")
	require.True(t, ok)
	assert.Equal(t, "ChatInput", n.TypeID)

	_, ok = graph.Node("missing")
	assert.False(t, ok)
}

// TestGraph_Export tests the editor-facing JSON shape.
func TestGraph_Export(t *testing.T) {
	graph := &GeneratedGraph{
		GraphID: "graph-123",
		Nodes: []Node{
			{
				InstanceID:  "ChatInput-1",
				TypeID:      "ChatInput",
				DisplayName: "Chat Input",
				Position:    Position{X: 100, Y: 100},
				Config:      map[string]any{"sender": "User"},
			},
		},
		Edges: []Edge{
			newEdge("ChatInput-1", "message", "LanguageModel-2", "input_value"),
		},
	}

	data, err := graph.Export()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "graph-123", doc["graph_id"])

	nodes, ok := doc["nodes"].([]any)
	require.True(t, ok)
	require.Len(t, nodes, 1)
	node := nodes[0].(map[string]any)
	assert.Equal(t, "ChatInput-1", node["instance_id"])
	assert.Equal(t, "ChatInput", node["type_id"])
	assert.Equal(t, map[string]any{"x": 100.0, "y": 100.0}, node["position"])

	edges, ok := doc["edges"].([]any)
	require.True(t, ok)
	require.Len(t, edges, 1)
	edge := edges[0].(map[string]any)
	assert.Equal(t, "ChatInput-1", edge["source_instance_id"])
	assert.Equal(t, "message", edge["source_port"])
	assert.Equal(t, "LanguageModel-2", edge["target_instance_id"])
	assert.Equal(t, "input_value", edge["target_port"])
}

// TestGraph_Export_EmptyCollections tests empty graphs keep their arrays.
func TestGraph_Export_EmptyCollections(t *testing.T) {
	graph := &GeneratedGraph{GraphID: "g", Nodes: []Node{}, Edges: []Edge{}}

	data, err := graph.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nodes": []`)
	assert.Contains(t, string(data), `"edges": []`)
	assert.NotContains(t, string(data), `"warnings"`)
}

// TestIDGen tests per-graph instance id generation.
func TestIDGen(t *testing.T) {
	var gen idGen
	assert.Equal(t, "ChatInput-1", gen.next("ChatInput"))
	assert.Equal(t, "ChatInput-2", gen.next("ChatInput"))
	assert.Equal(t, "Agent-3", gen.next("Agent"))
}
