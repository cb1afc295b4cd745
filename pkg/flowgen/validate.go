package flowgen

import "fmt"

// ViolationKind classifies a structural violation.
type ViolationKind string

// The violation kinds, one per structural invariant.
const (
	// ViolationDanglingReference: an edge references an instance id that
	// is not among the graph's nodes.
	ViolationDanglingReference ViolationKind = "dangling_reference"

	// ViolationTypeMismatch: an edge connects ports whose types are
	// incompatible, or references a port the component never declared.
	ViolationTypeMismatch ViolationKind = "type_mismatch"

	// ViolationOverconnectedInput: an input port without the multi flag
	// receives more than one incoming edge.
	ViolationOverconnectedInput ViolationKind = "overconnected_input"

	// ViolationNoEntryPoint: the graph has no node without incoming
	// edges, or no node without outgoing edges.
	ViolationNoEntryPoint ViolationKind = "no_entry_point"

	// ViolationDuplicateID: an instance id or edge id appears more than
	// once within the graph.
	ViolationDuplicateID ViolationKind = "duplicate_id"
)

// Violation describes one failed structural check.
// Violations are data, not errors: the caller inspects them and decides
// whether to retry, fall back, or surface a failure.
type Violation struct {
	Kind       ViolationKind `json:"kind"`
	Message    string        `json:"message"`
	InstanceID string        `json:"instance_id,omitempty"`
	EdgeID     string        `json:"edge_id,omitempty"`
}

// ValidationResult is the outcome of validating one graph.
type ValidationResult struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations,omitempty"`
}

// Validator checks generated graphs against the structural invariants.
// Validation is pure: no side effects, nothing thrown; a Validator is
// safe for concurrent use.
type Validator struct {
	catalog *Catalog
}

// NewValidator creates a Validator over the given catalog.
// The catalog supplies port declarations for the type checks; nodes whose
// component type is unknown are checked permissively, mirroring the
// indexer's wildcard fallback.
func NewValidator(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate runs every structural check and returns the full violation
// list. Checks run in a fixed order so the output is deterministic.
func (v *Validator) Validate(graph *GeneratedGraph) ValidationResult {
	var violations []Violation
	violations = append(violations, v.checkDuplicateIDs(graph)...)
	violations = append(violations, v.checkReferences(graph)...)
	violations = append(violations, v.checkTypes(graph)...)
	violations = append(violations, v.checkInputFanIn(graph)...)
	violations = append(violations, v.checkBoundaries(graph)...)
	return ValidationResult{OK: len(violations) == 0, Violations: violations}
}

// checkDuplicateIDs verifies instance ids and edge ids are unique.
func (v *Validator) checkDuplicateIDs(graph *GeneratedGraph) []Violation {
	var violations []Violation
	nodeIDs := make(map[string]struct{}, len(graph.Nodes))
	for _, n := range graph.Nodes {
		if _, dup := nodeIDs[n.InstanceID]; dup {
			violations = append(violations, Violation{
				Kind:       ViolationDuplicateID,
				Message:    fmt.Sprintf("instance id %q appears more than once", n.InstanceID),
				InstanceID: n.InstanceID,
			})
		}
		nodeIDs[n.InstanceID] = struct{}{}
	}
	edgeIDs := make(map[string]struct{}, len(graph.Edges))
	for _, e := range graph.Edges {
		if _, dup := edgeIDs[e.EdgeID]; dup {
			violations = append(violations, Violation{
				Kind:    ViolationDuplicateID,
				Message: fmt.Sprintf("edge id %q appears more than once", e.EdgeID),
				EdgeID:  e.EdgeID,
			})
		}
		edgeIDs[e.EdgeID] = struct{}{}
	}
	return violations
}

// checkReferences verifies every edge endpoint names an existing node.
func (v *Validator) checkReferences(graph *GeneratedGraph) []Violation {
	nodeIDs := make(map[string]struct{}, len(graph.Nodes))
	for _, n := range graph.Nodes {
		nodeIDs[n.InstanceID] = struct{}{}
	}
	var violations []Violation
	for _, e := range graph.Edges {
		for _, ref := range []string{e.SourceInstanceID, e.TargetInstanceID} {
			if _, ok := nodeIDs[ref]; !ok {
				violations = append(violations, Violation{
					Kind:       ViolationDanglingReference,
					Message:    fmt.Sprintf("edge %s references missing node %q", e.EdgeID, ref),
					InstanceID: ref,
					EdgeID:     e.EdgeID,
				})
			}
		}
	}
	return violations
}

// checkTypes verifies every edge connects an output port to an input
// port accepting its produced type. Endpoints on missing nodes are
// reported by checkReferences and skipped here.
func (v *Validator) checkTypes(graph *GeneratedGraph) []Violation {
	var violations []Violation
	for _, e := range graph.Edges {
		src, srcOK := graph.Node(e.SourceInstanceID)
		tgt, tgtOK := graph.Node(e.TargetInstanceID)
		if !srcOK || !tgtOK {
			continue
		}

		produced := TypeAny
		if rec, ok := v.catalog.Component(src.TypeID); ok {
			out, ok := rec.Output(e.SourcePort)
			if !ok {
				violations = append(violations, Violation{
					Kind:    ViolationTypeMismatch,
					Message: fmt.Sprintf("edge %s uses undeclared output port %s.%s", e.EdgeID, src.TypeID, e.SourcePort),
					EdgeID:  e.EdgeID,
				})
				continue
			}
			produced = out.Produces
		}

		accepts := []TypeTag{TypeAny}
		if rec, ok := v.catalog.Component(tgt.TypeID); ok {
			in, ok := rec.Input(e.TargetPort)
			if !ok {
				violations = append(violations, Violation{
					Kind:    ViolationTypeMismatch,
					Message: fmt.Sprintf("edge %s uses undeclared input port %s.%s", e.EdgeID, tgt.TypeID, e.TargetPort),
					EdgeID:  e.EdgeID,
				})
				continue
			}
			accepts = in.Accepts
		}

		if !Compatible(produced, accepts) {
			violations = append(violations, Violation{
				Kind: ViolationTypeMismatch,
				Message: fmt.Sprintf("edge %s connects %s output %q to incompatible input %s.%s",
					e.EdgeID, produced, e.SourcePort, tgt.TypeID, e.TargetPort),
				EdgeID: e.EdgeID,
			})
		}
	}
	return violations
}

// checkInputFanIn verifies no single-input port receives multiple edges.
func (v *Validator) checkInputFanIn(graph *GeneratedGraph) []Violation {
	counts := make(map[string]int)
	for _, e := range graph.Edges {
		counts[e.TargetInstanceID+"."+e.TargetPort]++
	}
	var violations []Violation
	for _, n := range graph.Nodes {
		rec, ok := v.catalog.Component(n.TypeID)
		if !ok {
			continue
		}
		for _, in := range rec.Inputs {
			if in.Multi {
				continue
			}
			if c := counts[n.InstanceID+"."+in.Name]; c > 1 {
				violations = append(violations, Violation{
					Kind: ViolationOverconnectedInput,
					Message: fmt.Sprintf("input %s.%s receives %d edges but is not multi-input",
						n.InstanceID, in.Name, c),
					InstanceID: n.InstanceID,
				})
			}
		}
	}
	return violations
}

// checkBoundaries verifies the graph has at least one entry point and at
// least one exit point.
func (v *Validator) checkBoundaries(graph *GeneratedGraph) []Violation {
	var violations []Violation
	if len(graph.EntryPoints()) == 0 {
		violations = append(violations, Violation{
			Kind:    ViolationNoEntryPoint,
			Message: "graph has no node without incoming edges",
		})
	}
	if len(graph.ExitPoints()) == 0 {
		violations = append(violations, Violation{
			Kind:    ViolationNoEntryPoint,
			Message: "graph has no node without outgoing edges",
		})
	}
	return violations
}
