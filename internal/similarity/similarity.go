package similarity

import (
	"sort"
	"strings"

	"tastemap/internal/normalize"
)

// Scorer computes a similarity score in [0,1] between two entity names.
// Names are normalized before comparison, so "The Blue Café" and
// "blue" compare as equal.
type Scorer struct {
	norm *normalize.Normalizer

	// DropTokenLen discards tokens of this rune length or shorter when
	// building word sets. Defaults to 2.
	DropTokenLen int
	// FuzzyWordMatch treats two words as shared when one contains the
	// other, not only on exact equality. Used by the registry
	// reconciliation path.
	FuzzyWordMatch bool
	// LengthPenalty multiplies the Jaccard score by the length ratio of
	// the two names, penalizing large length disparities.
	LengthPenalty bool
}

// NewScorer creates a Scorer with the reconciliation defaults:
// drop tokens of length <= 2, fuzzy word matching on, length penalty on.
func NewScorer(norm *normalize.Normalizer) *Scorer {
	return &Scorer{norm: norm, DropTokenLen: 2, FuzzyWordMatch: true, LengthPenalty: true}
}

// Score returns a similarity in [0,1]. Identical normalized names score 1.
// Names whose length ratio is below 0.5 score 0 outright, so "Parigi"
// never matches "Bistrot Parigi".
func (s *Scorer) Score(nameA, nameB string) float64 {
	a := s.norm.Normalize(nameA)
	b := s.norm.Normalize(nameB)
	// Canonical order keeps the score symmetric regardless of argument order.
	if a > b {
		a, b = b, a
	}
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return 0
	}
	ratio := float64(shorter) / float64(longer)
	if ratio < 0.5 {
		return 0
	}
	wordsA := s.words(a)
	wordsB := s.words(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		// Very short names have no usable tokens; fall back to containment.
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return 0.9
		}
		return 0
	}
	shared := sharedWords(wordsA, wordsB, s.FuzzyWordMatch)
	union := len(wordsA) + len(wordsB) - shared
	if union == 0 {
		return 0
	}
	score := float64(shared) / float64(union)
	if s.LengthPenalty {
		score *= ratio
	}
	return score
}

// sharedWords pairs words one-to-one: exact matches first, then fuzzy
// containment among the leftovers when enabled. Each word on either side
// participates in at most one pair, so shared never exceeds min(|A|,|B|)
// and the Jaccard quotient stays within [0,1].
func sharedWords(wordsA, wordsB []string, fuzzy bool) int {
	used := make([]bool, len(wordsB))
	shared := 0
	for _, w := range wordsA {
		for j, other := range wordsB {
			if used[j] || w != other {
				continue
			}
			used[j] = true
			shared++
			break
		}
	}
	if !fuzzy {
		return shared
	}
	for _, w := range wordsA {
		if hasWord(wordsB, used, w) {
			continue
		}
		for j, other := range wordsB {
			if used[j] || w == other {
				continue
			}
			if strings.Contains(w, other) || strings.Contains(other, w) {
				used[j] = true
				shared++
				break
			}
		}
	}
	return shared
}

func hasWord(words []string, used []bool, w string) bool {
	for j, other := range words {
		if used[j] && other == w {
			return true
		}
	}
	return false
}

// words returns the distinct usable tokens of a normalized name in sorted
// order, keeping the pairing deterministic.
func (s *Scorer) words(name string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range strings.Fields(name) {
		if len([]rune(tok)) <= s.DropTokenLen {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
