package domain

import (
	"sort"
	"strings"
)

// labelSeparator encodes a two-level "category -> concept" label in a flat string.
const labelSeparator = " -> "

// Label identifies one embedding row: a concept, optionally nested under a category.
// Flat labels carry the whole text as the concept and no category.
type Label struct {
	Category string
	Concept  string
	Full     string
}

// ParseLabel builds a Label from raw upload text. Strings containing the
// " -> " separator decompose into category and concept; anything else is flat.
func ParseLabel(raw string) Label {
	if idx := strings.Index(raw, labelSeparator); idx >= 0 {
		return Label{
			Category: strings.TrimSpace(raw[:idx]),
			Concept:  strings.TrimSpace(raw[idx+len(labelSeparator):]),
			Full:     raw,
		}
	}
	return Label{Concept: raw, Full: raw}
}

// NewLabel builds a Label from already-structured fields.
func NewLabel(category, concept, full string) Label {
	if full == "" {
		if category != "" {
			full = category + labelSeparator + concept
		} else {
			full = concept
		}
	}
	return Label{Category: category, Concept: concept, Full: full}
}

// Categorized reports whether the label carries a category.
func (l Label) Categorized() bool { return l.Category != "" }

// Taxonomy maps a category to its distinct concepts in first-seen order.
type Taxonomy map[string][]string

// Add inserts a concept under a category unless already present.
func (t Taxonomy) Add(category, concept string) {
	for _, c := range t[category] {
		if c == concept {
			return
		}
	}
	t[category] = append(t[category], concept)
}

// Categories returns the category names in sorted order for stable display.
func (t Taxonomy) Categories() []string {
	out := make([]string, 0, len(t))
	for c := range t {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// MatchMethod says how a candidate name was reconciled against the registry.
type MatchMethod string

const (
	MatchExact      MatchMethod = "exact"
	MatchSimilarity MatchMethod = "similarity"
	MatchNone       MatchMethod = "none"
)

// MatchResult is the outcome of resolving one candidate name.
// Matched is empty when Method is MatchNone.
type MatchResult struct {
	Input   string
	Matched string
	Method  MatchMethod
}

// Point is a 2D projection coordinate, index-aligned with the input vectors.
type Point struct {
	X float64
	Y float64
}

// Batch is the admitted portion of one upload after dimension filtering.
// Vectors and Labels are index-aligned; Rejected counts filtered vectors.
type Batch struct {
	ID       string
	Taxonomy Taxonomy
	Vectors  [][]float64
	Labels   []Label
	Rejected int
}

// Analysis is the full pipeline output for one batch.
type Analysis struct {
	Batch     Batch
	Points    []Point
	Clusters  []int
	Matches   []MatchResult
	Unmatched int
}

// Registry supplies the canonical entity names used for resolution.
type Registry interface {
	Add(names ...string)
	All() []string
	Len() int
}

// Analyzer runs the full analysis pipeline over one uploaded batch.
type Analyzer interface {
	AnalyzeBatch(records []Label, vectors [][]float64) (Analysis, error)
	ResolveName(candidate string) (MatchResult, error)
}
