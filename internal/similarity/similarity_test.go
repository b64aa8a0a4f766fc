package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tastemap/internal/normalize"
)

func newScorer() *Scorer {
	return NewScorer(normalize.New(nil, nil))
}

func TestScoreIdentical(t *testing.T) {
	s := newScorer()
	for _, name := range []string{"Parigi", "Blue Ocean", "a"} {
		assert.Equal(t, 1.0, s.Score(name, name), "name %q", name)
	}
	// Names that normalize to the same string are identical too.
	assert.Equal(t, 1.0, s.Score("The Blue Café", "blue"))
}

func TestScoreEmpty(t *testing.T) {
	s := newScorer()
	assert.Equal(t, 0.0, s.Score("", ""))
	assert.Equal(t, 0.0, s.Score("Parigi", ""))
}

func TestScoreSymmetric(t *testing.T) {
	s := newScorer()
	pairs := [][2]string{
		{"Blue Ocean Diner", "Blue Ocean"},
		{"Bistrot Parigi", "Parigi"},
		{"Milano Trattoria", "Trattorias Milano"},
		{"ab", "abc"},
	}
	for _, p := range pairs {
		assert.Equal(t, s.Score(p[0], p[1]), s.Score(p[1], p[0]), "pair %v", p)
	}
}

func TestScoreLengthRatioGuard(t *testing.T) {
	s := newScorer()
	// "parigi" vs "bistrot parigi": 6/14 < 0.5, rejected outright.
	assert.Equal(t, 0.0, s.Score("Bistrot Parigi", "Parigi"))
}

func TestScoreSubstringFallback(t *testing.T) {
	s := newScorer()
	// Both token sets empty after dropping short tokens; containment applies.
	assert.Equal(t, 0.9, s.Score("ab", "abc"))
	assert.Equal(t, 0.0, s.Score("ab", "xy"))
}

func TestScoreJaccard(t *testing.T) {
	s := newScorer()
	s.LengthPenalty = false
	// {blue, ocean} vs {blue, ocean, diner}: 2 shared of 3.
	assert.InDelta(t, 2.0/3.0, s.Score("Blue Ocean Diner", "Blue Ocean"), 1e-9)
}

func TestScoreLengthPenalty(t *testing.T) {
	s := newScorer()
	// Jaccard 2/3 scaled by length ratio 10/16.
	assert.InDelta(t, (2.0/3.0)*(10.0/16.0), s.Score("Blue Ocean Diner", "Blue Ocean"), 1e-9)
}

func TestScoreFuzzyWordMatch(t *testing.T) {
	s := newScorer()
	s.LengthPenalty = false
	// "trattoria" is contained in "trattorias"; fuzzy counts it as shared.
	assert.InDelta(t, 1.0, s.Score("Milano Trattoria", "Trattorias Milano"), 1e-9)

	s.FuzzyWordMatch = false
	assert.InDelta(t, 1.0/3.0, s.Score("Milano Trattoria", "Trattorias Milano"), 1e-9)
}

func TestScoreFuzzySharesEachWordOnce(t *testing.T) {
	s := newScorer()
	s.LengthPenalty = false
	// Both "blue" and "jay" are contained in "bluejay", but the single
	// right-hand word can be paired only once: 1 shared of 2.
	assert.InDelta(t, 0.5, s.Score("Blue Jay", "BlueJay"), 1e-9)

	s.LengthPenalty = true
	assert.InDelta(t, 0.5*(7.0/8.0), s.Score("Blue Jay", "BlueJay"), 1e-9)
}

func TestScoreRange(t *testing.T) {
	s := newScorer()
	pairs := [][2]string{
		{"Blue Ocean Diner", "Blue Ocean"},
		{"The Blue Café", "Blue Kitchen"},
		{"Blue Jay", "BlueJay"},
		{"Sea Salt Grill House", "SeaSaltGrill"},
		{"Parigi", "Roma"},
		{"a", "b"},
	}
	for _, p := range pairs {
		got := s.Score(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0, "pair %v", p)
		assert.LessOrEqual(t, got, 1.0, "pair %v", p)
	}
}
