package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chatInputYAML = `
type_id: ChatInput
display_name: Chat Input
category: input_output
description: Get chat inputs
keywords: [chat, input]
outputs:
  - name: message
    type: Message
defaults:
  sender: User
`

const chatInputJSON = `{
  "type_id": "ChatInput",
  "display_name": "Chat Input",
  "category": "input_output",
  "outputs": [{"name": "message", "type": "Message"}]
}`

// TestDecodeComponent_YAML tests YAML component decoding.
func TestDecodeComponent_YAML(t *testing.T) {
	doc, err := DecodeComponent([]byte(chatInputYAML))
	require.NoError(t, err)

	assert.Equal(t, "ChatInput", doc.TypeID)
	assert.Equal(t, "Chat Input", doc.DisplayName)
	assert.Equal(t, "input_output", doc.Category)
	assert.Equal(t, []string{"chat", "input"}, doc.Keywords)
	require.Len(t, doc.Outputs, 1)
	assert.Equal(t, "message", doc.Outputs[0].Name)
	assert.Equal(t, "Message", doc.Outputs[0].Type)
	assert.Equal(t, "User", doc.Defaults["sender"])
}

// TestDecodeComponent_JSON tests that JSON decodes identically.
func TestDecodeComponent_JSON(t *testing.T) {
	doc, err := DecodeComponent([]byte(chatInputJSON))
	require.NoError(t, err)
	assert.Equal(t, "ChatInput", doc.TypeID)
	assert.Equal(t, "Message", doc.Outputs[0].Type)
}

// TestDecodeComponent_SchemaRejects tests structural schema enforcement.
func TestDecodeComponent_SchemaRejects(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"empty document", ""},
		{"missing type_id", "display_name: X\ncategory: tool\n"},
		{"missing category", "type_id: X\ndisplay_name: X\n"},
		{"empty type_id", "type_id: \"\"\ndisplay_name: X\ncategory: tool\n"},
		{"port without name", "type_id: X\ndisplay_name: X\ncategory: tool\noutputs:\n  - type: Tool\n"},
		{"keywords not strings", "type_id: X\ndisplay_name: X\ncategory: tool\nkeywords: [1, 2]\n"},
		{"not yaml at all", "{{{{"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeComponent([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

// TestDecode_ReturnsSourceError tests decode failures carry the
// structured error type.
func TestDecode_ReturnsSourceError(t *testing.T) {
	_, err := DecodeComponent([]byte("display_name: X\ncategory: tool\n"))
	require.Error(t, err)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "component", srcErr.Name)
	assert.Error(t, srcErr.Err)
	assert.ErrorIs(t, err, srcErr.Err)

	_, err = DecodeTemplate([]byte("archetype: x\n"))
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "template", srcErr.Name)
}

const basicTemplateYAML = `
archetype: basic_chat
name: Basic Prompting
nodes:
  - id: in
    type: ChatInput
  - id: model
    type: LanguageModel
    config:
      temperature: 0.2
edges:
  - source: in
    source_port: message
    target: model
    target_port: input_value
`

// TestDecodeTemplate tests template decoding.
func TestDecodeTemplate(t *testing.T) {
	doc, err := DecodeTemplate([]byte(basicTemplateYAML))
	require.NoError(t, err)

	assert.Equal(t, "basic_chat", doc.Archetype)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, map[string]any{"temperature": 0.2}, doc.Nodes[1].Config)
	require.Len(t, doc.Edges, 1)
	assert.Equal(t, "message", doc.Edges[0].SourcePort)
}

// TestDecodeTemplate_SchemaRejects tests template schema enforcement.
func TestDecodeTemplate_SchemaRejects(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"missing archetype", "nodes:\n  - id: a\n    type: X\n"},
		{"no nodes", "archetype: basic_chat\nnodes: []\n"},
		{"node without type", "archetype: basic_chat\nnodes:\n  - id: a\n"},
		{"edge missing port", "archetype: basic_chat\nnodes:\n  - id: a\n    type: X\nedges:\n  - source: a\n    target: a\n    target_port: in\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTemplate([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

// TestComponentsFromDir tests directory loading with mixed content.
func TestComponentsFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat_input.yaml"), []byte(chatInputYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat_input.json"), []byte(chatInputJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("category: only\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	docs, problems, err := ComponentsFromDir(dir)
	require.NoError(t, err)

	assert.Len(t, docs, 2)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Path, "broken.yaml")

	// Problems carry the structured error, named after the file.
	var srcErr *SourceError
	require.True(t, errors.As(problems[0].Err, &srcErr))
	assert.Equal(t, problems[0].Path, srcErr.Name)
}

// TestComponentsFromDir_Missing tests a missing directory is a hard error.
func TestComponentsFromDir_Missing(t *testing.T) {
	_, _, err := ComponentsFromDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

// TestTemplatesFromDir tests template directory loading.
func TestTemplatesFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basic.yaml"), []byte(basicTemplateYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("archetype: x\n"), 0o644))

	docs, problems, err := TemplatesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "basic_chat", docs[0].Archetype)
	assert.Len(t, problems, 1)
}

// TestBuiltin_Declarations sanity-checks the shipped source set.
func TestBuiltin_Declarations(t *testing.T) {
	components := Builtin()
	assert.Len(t, components, 13)

	seen := make(map[string]struct{})
	for _, doc := range components {
		assert.NotEmpty(t, doc.TypeID)
		assert.NotEmpty(t, doc.DisplayName)
		assert.NotEmpty(t, doc.Category)
		_, dup := seen[doc.TypeID]
		assert.False(t, dup, "duplicate builtin type id %s", doc.TypeID)
		seen[doc.TypeID] = struct{}{}
	}

	templates := BuiltinTemplates()
	assert.Len(t, templates, 4)
	for _, tmpl := range templates {
		assert.NotEmpty(t, tmpl.Archetype)
		assert.NotEmpty(t, tmpl.Nodes)
		for _, e := range tmpl.Edges {
			_, srcOK := seen[nodeType(tmpl, e.Source)]
			_, tgtOK := seen[nodeType(tmpl, e.Target)]
			assert.True(t, srcOK, "template %s edge source %s", tmpl.Archetype, e.Source)
			assert.True(t, tgtOK, "template %s edge target %s", tmpl.Archetype, e.Target)
		}
	}
}

// nodeType resolves a template node id to its component type.
func nodeType(tmpl TemplateDoc, nodeID string) string {
	for _, n := range tmpl.Nodes {
		if n.ID == nodeID {
			return n.Type
		}
	}
	return ""
}
