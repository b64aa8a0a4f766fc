package taxonomy

import (
	"fmt"

	"tastemap/internal/domain"
)

// Aggregate groups records into a category→concept taxonomy and filters
// the paired vectors down to a dimension-consistent batch.
//
// Records and vectors correspond by index; a length mismatch is a caller
// error. The first non-empty vector fixes the batch dimensionality; every
// vector of a different length is dropped together with its label and
// counted in Batch.Rejected rather than reported as an error. Zero admitted
// vectors is a valid empty result.
func Aggregate(records []domain.Label, vectors [][]float64) (domain.Batch, error) {
	if len(records) != len(vectors) {
		return domain.Batch{}, fmt.Errorf("aggregate: records and vectors length mismatch: %d != %d", len(records), len(vectors))
	}
	batch := domain.Batch{Taxonomy: domain.Taxonomy{}}
	dimension := 0
	for i, vec := range vectors {
		rec := records[i]
		if rec.Categorized() {
			batch.Taxonomy.Add(rec.Category, rec.Concept)
		}
		if len(vec) == 0 {
			batch.Rejected++
			continue
		}
		if dimension == 0 {
			dimension = len(vec)
		}
		if len(vec) != dimension {
			batch.Rejected++
			continue
		}
		batch.Vectors = append(batch.Vectors, vec)
		batch.Labels = append(batch.Labels, rec)
	}
	return batch, nil
}
