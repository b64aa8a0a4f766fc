package resolve

import (
	"fmt"

	"tastemap/internal/domain"
	"tastemap/internal/normalize"
	"tastemap/internal/similarity"
)

// Resolver matches candidate names against a canonical registry.
// Resolution is a pure function of its inputs; concurrent calls are safe.
type Resolver struct {
	norm   *normalize.Normalizer
	scorer *similarity.Scorer
}

// New creates a Resolver using the given normalizer and scorer.
func New(norm *normalize.Normalizer, scorer *similarity.Scorer) *Resolver {
	return &Resolver{norm: norm, scorer: scorer}
}

// Resolve matches candidate against the registry: an exact pass over
// normalized names first, then the FIRST entry in registry order whose
// similarity score meets the threshold. The positional first-qualifying
// rule is intentional; the best-scoring entry is not searched for.
//
// A threshold outside [0,1] is a caller error and fails immediately.
func (r *Resolver) Resolve(candidate string, registry []string, threshold float64) (domain.MatchResult, error) {
	if threshold < 0 || threshold > 1 {
		return domain.MatchResult{}, fmt.Errorf("resolve: threshold %v outside [0,1]", threshold)
	}
	normalized := r.norm.Normalize(candidate)
	for _, entry := range registry {
		if r.norm.Normalize(entry) == normalized {
			return domain.MatchResult{Input: candidate, Matched: entry, Method: domain.MatchExact}, nil
		}
	}
	for _, entry := range registry {
		if r.scorer.Score(candidate, entry) >= threshold {
			return domain.MatchResult{Input: candidate, Matched: entry, Method: domain.MatchSimilarity}, nil
		}
	}
	return domain.MatchResult{Input: candidate, Method: domain.MatchNone}, nil
}
