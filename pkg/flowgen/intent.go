package flowgen

import (
	"fmt"
	"log/slog"
	"strings"
)

// minKeywordScore is the confidence threshold for the keyword fallback:
// at least one description token must match an archetype's keyword set.
const minKeywordScore = 1

// ResolvedIntent is the output of intent resolution: a flow archetype and
// the ordered component sequence to realize.
type ResolvedIntent struct {
	// Archetype is the selected flow shape.
	Archetype Archetype
	// Sequence is the ordered list of canonical component type ids.
	Sequence []string
	// Warnings records hint types that were dropped because the catalog
	// does not know them.
	Warnings []string
}

// Resolver maps a free-text description plus optional externally supplied
// component hints to a ResolvedIntent.
type Resolver struct {
	catalog *Catalog
	logger  *slog.Logger
}

// NewResolver creates a Resolver over the given catalog.
// A nil logger falls back to slog.Default().
func NewResolver(catalog *Catalog, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{catalog: catalog, logger: logger}
}

// Resolve determines the archetype and component sequence for a request.
//
// When hints are supplied (the expected path: an external classifier has
// already chosen components), each hint is resolved against the catalog
// case- and alias-insensitively; unknown types are dropped with a warning.
// Without usable hints, resolution falls back to keyword scoring of the
// description against each archetype. Returns ErrIntentUnresolved when
// neither path yields anything.
func (r *Resolver) Resolve(description string, hints []string) (*ResolvedIntent, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	sequence, warnings := r.resolveHints(hints)
	if len(sequence) > 0 {
		return &ResolvedIntent{
			Archetype: r.archetypeFor(description, sequence),
			Sequence:  sequence,
			Warnings:  warnings,
		}, nil
	}

	archetype, score := r.scoreArchetypes(description)
	if score < minKeywordScore {
		return nil, &UnresolvedError{Description: description, BestScore: score}
	}
	tmpl, ok := r.catalog.Template(archetype)
	if !ok {
		// scoreArchetypes only considers archetypes with templates.
		return nil, &UnresolvedError{Description: description, BestScore: score}
	}
	return &ResolvedIntent{
		Archetype: archetype,
		Sequence:  tmpl.TypeIDs(),
		Warnings:  warnings,
	}, nil
}

// resolveHints maps hint names to canonical type ids, preserving order
// and dropping duplicates and unknowns.
func (r *Resolver) resolveHints(hints []string) (sequence []string, warnings []string) {
	seen := make(map[string]struct{}, len(hints))
	for _, hint := range hints {
		if strings.TrimSpace(hint) == "" {
			continue
		}
		rec, ok := r.catalog.Resolve(hint)
		if !ok {
			r.logger.Warn("dropping unknown component hint", slog.String("hint", hint))
			warnings = append(warnings, fmt.Sprintf("unknown component type %q dropped", hint))
			continue
		}
		if _, dup := seen[rec.TypeID]; dup {
			continue
		}
		seen[rec.TypeID] = struct{}{}
		sequence = append(sequence, rec.TypeID)
	}
	return sequence, warnings
}

// archetypeFor picks the archetype for a hint-derived sequence: the
// template sharing the most component types wins, ties breaking toward
// earlier declaration order. With no overlap anywhere, the description's
// keyword score decides, and basic_chat is the final default.
func (r *Resolver) archetypeFor(description string, sequence []string) Archetype {
	best := Archetype("")
	bestOverlap := 0
	for _, a := range r.catalog.Archetypes() {
		tmpl, _ := r.catalog.Template(a)
		if n := tmpl.overlap(sequence); n > bestOverlap {
			best, bestOverlap = a, n
		}
	}
	if bestOverlap > 0 {
		return best
	}
	if a, score := r.scoreArchetypes(description); score >= minKeywordScore {
		return a
	}
	return ArchetypeBasicChat
}

// scoreArchetypes scores each loaded archetype by keyword overlap between
// the description tokens and the archetype's keyword set (its intrinsic
// keywords plus the keywords of its template's components). Deterministic:
// ties break toward earlier declaration order.
func (r *Resolver) scoreArchetypes(description string) (Archetype, int) {
	tokens := tokenize(description)
	best := Archetype("")
	bestScore := 0
	for _, a := range r.catalog.Archetypes() {
		score := r.scoreArchetype(a, tokens)
		if score > bestScore {
			best, bestScore = a, score
		}
	}
	return best, bestScore
}

// scoreArchetype counts description tokens matching the archetype's
// keyword set. Each token counts at most once.
func (r *Resolver) scoreArchetype(a Archetype, tokens []string) int {
	keywords := make(map[string]struct{})
	for _, kw := range archetypeKeywords[a] {
		keywords[kw] = struct{}{}
	}
	if tmpl, ok := r.catalog.Template(a); ok {
		for _, typeID := range tmpl.TypeIDs() {
			if rec, ok := r.catalog.Component(typeID); ok {
				for _, kw := range rec.Keywords {
					keywords[kw] = struct{}{}
				}
			}
		}
	}

	score := 0
	for _, tok := range tokens {
		for kw := range keywords {
			if tokenMatches(tok, kw) {
				score++
				break
			}
		}
	}
	return score
}
