// Package classify defines the interface for external intent classifiers.
//
// A classifier maps a free-text flow description onto component type ids
// from the catalog. The core resolver works without one (keyword scoring),
// but a classifier backed by a language model typically produces better
// sequences for ambiguous descriptions. Implementations plug into the
// generator via flowgen.WithClassifier.
package classify

import "context"

// Component describes a catalog entry offered to a classifier.
// It carries just enough for selection, not the full port contracts.
type Component struct {
	TypeID      string
	DisplayName string
	Category    string
	Description string
}

// Classifier selects component type ids matching a flow description.
// Implementations must be safe for concurrent use.
type Classifier interface {
	// Classify returns an ordered list of component type ids drawn from
	// components that best match the description. An empty result means
	// the classifier could not make a selection; the caller falls back
	// to its own resolution strategy.
	Classify(ctx context.Context, description string, components []Component) ([]string, error)
}

// Static is a Classifier that always returns a fixed selection.
// Useful for testing and for callers that precompute sequences.
type Static struct {
	// Selections is returned verbatim from every Classify call.
	Selections []string
}

// Classify returns the static selection regardless of input.
func (s Static) Classify(_ context.Context, _ string, _ []Component) ([]string, error) {
	out := make([]string, len(s.Selections))
	copy(out, s.Selections)
	return out, nil
}
