package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastemap/internal/domain"
	"tastemap/internal/normalize"
	"tastemap/internal/similarity"
)

func newResolver() *Resolver {
	norm := normalize.New(nil, nil)
	scorer := similarity.NewScorer(norm)
	scorer.LengthPenalty = false
	return New(norm, scorer)
}

func TestResolveExactVerbatim(t *testing.T) {
	r := newResolver()
	for _, threshold := range []float64{0, 0.5, 1} {
		res, err := r.Resolve("Parigi", []string{"Parigi"}, threshold)
		require.NoError(t, err)
		assert.Equal(t, domain.MatchExact, res.Method)
		assert.Equal(t, "Parigi", res.Matched)
	}
}

func TestResolveExactNormalized(t *testing.T) {
	r := newResolver()
	// Exact is decided on normalized names and takes the first registry hit.
	res, err := r.Resolve("blue", []string{"The Blue Café", "Blue"}, 0.85)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchExact, res.Method)
	assert.Equal(t, "The Blue Café", res.Matched)
}

func TestResolveFirstQualifyingSimilarity(t *testing.T) {
	r := newResolver()
	// The first entry scores 1/2, the second 2/3; the first to qualify
	// wins, not the best-scoring one.
	res, err := r.Resolve("Blue Ocean Diner", []string{"Blue Ocean Kitchen", "Blue Ocean"}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchSimilarity, res.Method)
	assert.Equal(t, "Blue Ocean Kitchen", res.Matched)
}

func TestResolveLengthGuardPreventsMatch(t *testing.T) {
	r := newResolver()
	res, err := r.Resolve("Bistrot Parigi", []string{"Parigi"}, 0.85)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchNone, res.Method)
	assert.Empty(t, res.Matched)
}

func TestResolveNoMatch(t *testing.T) {
	r := newResolver()
	res, err := r.Resolve("Sakura Sushi", []string{"Parigi", "Blue Ocean"}, 0.75)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchNone, res.Method)
	assert.Equal(t, "Sakura Sushi", res.Input)
}

func TestResolveEmptyRegistry(t *testing.T) {
	r := newResolver()
	res, err := r.Resolve("Parigi", nil, 0.85)
	require.NoError(t, err)
	assert.Equal(t, domain.MatchNone, res.Method)
}

func TestResolveInvalidThreshold(t *testing.T) {
	r := newResolver()
	for _, threshold := range []float64{-0.1, 1.5} {
		_, err := r.Resolve("Parigi", []string{"Parigi"}, threshold)
		assert.Error(t, err, "threshold %v", threshold)
	}
}
