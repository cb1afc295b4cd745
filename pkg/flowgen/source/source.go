// Package source reads component and template source documents.
//
// Sources are structural declarations in YAML or JSON: the package only
// reads declared metadata and never executes component logic. Every
// document is checked against a JSON Schema before it is decoded, so a
// malformed source fails loudly at index time instead of producing a
// half-formed catalog entry.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PortDoc declares one input or output port.
// Outputs use Type; inputs use Types (plural) plus the optional Multi flag.
type PortDoc struct {
	Name  string   `yaml:"name" json:"name"`
	Type  string   `yaml:"type,omitempty" json:"type,omitempty"`
	Types []string `yaml:"types,omitempty" json:"types,omitempty"`
	Multi bool     `yaml:"multi,omitempty" json:"multi,omitempty"`
}

// ComponentDoc is the structural declaration of one component type.
type ComponentDoc struct {
	TypeID      string         `yaml:"type_id" json:"type_id"`
	DisplayName string         `yaml:"display_name" json:"display_name"`
	Category    string         `yaml:"category" json:"category"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Keywords    []string       `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Inputs      []PortDoc      `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs     []PortDoc      `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Defaults    map[string]any `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// TemplateNodeDoc is one node of a template document.
type TemplateNodeDoc struct {
	ID     string         `yaml:"id" json:"id"`
	Type   string         `yaml:"type" json:"type"`
	Config map[string]any `yaml:"config,omitempty" json:"config,omitempty"`
}

// TemplateEdgeDoc is one connection of a template document.
type TemplateEdgeDoc struct {
	Source     string `yaml:"source" json:"source"`
	SourcePort string `yaml:"source_port" json:"source_port"`
	Target     string `yaml:"target" json:"target"`
	TargetPort string `yaml:"target_port" json:"target_port"`
}

// TemplateDoc is a pre-built starter graph tagged with an archetype.
type TemplateDoc struct {
	Archetype string            `yaml:"archetype" json:"archetype"`
	Name      string            `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes     []TemplateNodeDoc `yaml:"nodes" json:"nodes"`
	Edges     []TemplateEdgeDoc `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// DecodeComponent parses and schema-checks one component document.
// YAML and JSON inputs are both accepted. Failures are returned as a
// *SourceError wrapping the parse or schema error.
func DecodeComponent(data []byte) (ComponentDoc, error) {
	if err := validateComponentDoc(data); err != nil {
		return ComponentDoc{}, &SourceError{Name: "component", Err: err}
	}
	var doc ComponentDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ComponentDoc{}, &SourceError{Name: "component", Err: fmt.Errorf("decode: %w", err)}
	}
	return doc, nil
}

// DecodeTemplate parses and schema-checks one template document.
// YAML and JSON inputs are both accepted. Failures are returned as a
// *SourceError wrapping the parse or schema error.
func DecodeTemplate(data []byte) (TemplateDoc, error) {
	if err := validateTemplateDoc(data); err != nil {
		return TemplateDoc{}, &SourceError{Name: "template", Err: err}
	}
	var doc TemplateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TemplateDoc{}, &SourceError{Name: "template", Err: fmt.Errorf("decode: %w", err)}
	}
	return doc, nil
}

// SourceError identifies a malformed component or template document.
// Indexing absorbs these by skipping the offending source, so callers
// usually only meet them through Problem.Err or logs; errors.As
// recovers the structured form.
type SourceError struct {
	// Name identifies the document: its kind for in-memory decodes, or
	// the file path for directory scans.
	Name string
	// Err is the underlying parse or schema error.
	Err error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Problem records a source file that could not be loaded.
// Directory scans skip problem files instead of aborting. Err is always
// a *SourceError named after the file.
type Problem struct {
	// Path is the file that failed.
	Path string
	// Err is the parse or schema error.
	Err error
}

// ComponentsFromDir loads every component document in dir.
// Files with unknown extensions are ignored; malformed files are returned
// as Problems, not errors. This is the only disk I/O in the system and
// runs once per catalog build.
func ComponentsFromDir(dir string) ([]ComponentDoc, []Problem, error) {
	var docs []ComponentDoc
	var problems []Problem
	err := scanDir(dir, func(path string, data []byte) {
		doc, err := DecodeComponent(data)
		if err != nil {
			problems = append(problems, Problem{Path: path, Err: namedError(err, path)})
			return
		}
		docs = append(docs, doc)
	})
	if err != nil {
		return nil, nil, err
	}
	return docs, problems, nil
}

// TemplatesFromDir loads every template document in dir.
// Malformed files are returned as Problems, not errors.
func TemplatesFromDir(dir string) ([]TemplateDoc, []Problem, error) {
	var docs []TemplateDoc
	var problems []Problem
	err := scanDir(dir, func(path string, data []byte) {
		doc, err := DecodeTemplate(data)
		if err != nil {
			problems = append(problems, Problem{Path: path, Err: namedError(err, path)})
			return
		}
		docs = append(docs, doc)
	})
	if err != nil {
		return nil, nil, err
	}
	return docs, problems, nil
}

// namedError re-tags a decode failure with the file it came from.
func namedError(err error, path string) error {
	if srcErr, ok := err.(*SourceError); ok {
		srcErr.Name = path
	}
	return err
}

// scanDir reads every YAML/JSON file in dir, non-recursively, in the
// lexical order ReadDir guarantees.
func scanDir(dir string, fn func(path string, data []byte)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read source dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read source file: %w", err)
		}
		fn(path, data)
	}
	return nil
}
