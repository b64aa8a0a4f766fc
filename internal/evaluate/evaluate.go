package evaluate

import (
	"tastemap/internal/normalize"
	"tastemap/internal/similarity"
)

// ItemOutcome describes how one expected recommendation fared against the
// actual list. Position is the index in the actual list, -1 when missing.
// PositionScore grades placement: 1.0 at the exact position, 0.67 found
// within the expected window, 0.33 found beyond it, 0 missing.
type ItemOutcome struct {
	Expected      string
	Found         bool
	Position      int
	PositionScore float64
}

// Report summarizes a comparison of an actual recommendation list against
// the expected one. Accuracy and Recall are matches over expected count,
// Precision is matches over actual count.
type Report struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	Matched   int
	Extra     int
	Missing   int
	Items     []ItemOutcome
}

// Evaluator compares recommendation lists using resolver-grade name
// matching: exact normalized equality or a similarity score at or above
// the threshold.
type Evaluator struct {
	norm      *normalize.Normalizer
	scorer    *similarity.Scorer
	threshold float64
}

func New(norm *normalize.Normalizer, scorer *similarity.Scorer, threshold float64) *Evaluator {
	return &Evaluator{norm: norm, scorer: scorer, threshold: threshold}
}

// Compare evaluates the actual list against the expected one. An empty
// expected list yields a zero Report rather than an error. An actual item
// may satisfy more than one expected entry; positions are not consumed.
func (e *Evaluator) Compare(expected, actual []string) Report {
	if len(expected) == 0 {
		return Report{}
	}
	report := Report{Items: make([]ItemOutcome, 0, len(expected))}
	for i, exp := range expected {
		outcome := ItemOutcome{Expected: exp, Position: -1}
		for j, act := range actual {
			if e.sameEntity(exp, act) {
				outcome.Found = true
				outcome.Position = j
				break
			}
		}
		switch {
		case outcome.Position == i:
			outcome.PositionScore = 1.0
		case outcome.Position >= 0 && outcome.Position < len(expected):
			outcome.PositionScore = 0.67
		case outcome.Position >= 0:
			outcome.PositionScore = 0.33
		}
		if outcome.Found {
			report.Matched++
		}
		report.Items = append(report.Items, outcome)
	}
	report.Accuracy = float64(report.Matched) / float64(len(expected))
	report.Recall = report.Accuracy
	if len(actual) > 0 {
		report.Precision = float64(report.Matched) / float64(len(actual))
	}
	if len(actual) > report.Matched {
		report.Extra = len(actual) - report.Matched
	}
	report.Missing = len(expected) - report.Matched
	return report
}

func (e *Evaluator) sameEntity(a, b string) bool {
	na, nb := e.norm.Normalize(a), e.norm.Normalize(b)
	if na != "" && na == nb {
		return true
	}
	return e.scorer.Score(a, b) >= e.threshold
}
