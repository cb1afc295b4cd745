package source

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// portSchema is shared between input and output declarations.
// Inputs declare "types" (a set), outputs declare "type" (a single tag);
// both are optional so untyped ports can fall back to the wildcard.
var portSchema = map[string]any{
	"type":     "object",
	"required": []any{"name"},
	"properties": map[string]any{
		"name":  map[string]any{"type": "string", "minLength": 1},
		"type":  map[string]any{"type": "string"},
		"types": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"multi": map[string]any{"type": "boolean"},
	},
}

// componentSchema is the structural contract for component sources.
var componentSchema = map[string]any{
	"type":     "object",
	"required": []any{"type_id", "display_name", "category"},
	"properties": map[string]any{
		"type_id":      map[string]any{"type": "string", "minLength": 1},
		"display_name": map[string]any{"type": "string", "minLength": 1},
		"category":     map[string]any{"type": "string", "minLength": 1},
		"description":  map[string]any{"type": "string"},
		"keywords":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"inputs":       map[string]any{"type": "array", "items": portSchema},
		"outputs":      map[string]any{"type": "array", "items": portSchema},
		"defaults":     map[string]any{"type": "object"},
	},
}

// templateSchema is the structural contract for template sources.
var templateSchema = map[string]any{
	"type":     "object",
	"required": []any{"archetype", "nodes"},
	"properties": map[string]any{
		"archetype": map[string]any{"type": "string", "minLength": 1},
		"name":      map[string]any{"type": "string"},
		"nodes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "type"},
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"type":   map[string]any{"type": "string", "minLength": 1},
					"config": map[string]any{"type": "object"},
				},
			},
		},
		"edges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"source", "source_port", "target", "target_port"},
				"properties": map[string]any{
					"source":      map[string]any{"type": "string", "minLength": 1},
					"source_port": map[string]any{"type": "string", "minLength": 1},
					"target":      map[string]any{"type": "string", "minLength": 1},
					"target_port": map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
	},
}

func validateComponentDoc(data []byte) error {
	return validateAgainst(data, componentSchema, "component")
}

func validateTemplateDoc(data []byte) error {
	return validateAgainst(data, templateSchema, "template")
}

// validateAgainst checks a raw document against a schema. The document is
// first decoded generically so YAML and JSON inputs validate identically.
func validateAgainst(data []byte, schema map[string]any, kind string) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s document: %w", kind, err)
	}
	if doc == nil {
		return fmt.Errorf("%s document is empty", kind)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate %s document: %w", kind, err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return fmt.Errorf("%s document failed schema validation: %v", kind, msgs)
	}
	return nil
}
