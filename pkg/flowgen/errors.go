package flowgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog building.
var (
	// ErrNoUsableSources indicates every component source was skipped or
	// the source set was empty.
	ErrNoUsableSources = errors.New("no usable component sources")
)

// Sentinel errors for intent resolution and assembly.
var (
	// ErrNilContext indicates Generate() was called with a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrEmptyDescription indicates Resolve() was called with an empty description.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrIntentUnresolved indicates no archetype scored above the confidence
	// threshold and no component hints were supplied.
	ErrIntentUnresolved = errors.New("intent could not be resolved")

	// ErrEmptySequence indicates Assemble() received an intent with no components.
	ErrEmptySequence = errors.New("component sequence is empty")
)

// UnresolvedError carries the description that could not be resolved.
type UnresolvedError struct {
	// Description is the free-text request that failed to resolve.
	Description string
	// BestScore is the highest keyword score any archetype reached.
	BestScore int
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("intent could not be resolved for %q (best score %d)", e.Description, e.BestScore)
}

// Unwrap returns ErrIntentUnresolved for errors.Is support.
func (e *UnresolvedError) Unwrap() error {
	return ErrIntentUnresolved
}

// GenerationError wraps an assembly or validation failure.
// When validation failed, Violations holds the full list so the caller
// can choose a retry strategy instead of re-deriving intent.
type GenerationError struct {
	// Stage is the pipeline stage that failed ("resolve", "assemble", "validate").
	Stage string
	// Violations is the validator output when Stage is "validate".
	Violations []Violation
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if len(e.Violations) > 0 {
		msgs := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			msgs[i] = v.Message
		}
		return fmt.Sprintf("generation failed at %s: %s", e.Stage, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GenerationError) Unwrap() error {
	return e.Err
}
