package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tastemap/internal/domain"
	"tastemap/internal/normalize"
	"tastemap/internal/registry"
	"tastemap/internal/resolve"
	"tastemap/internal/similarity"
)

func newService(names ...string) *AnalysisService {
	norm := normalize.New(nil, nil)
	resolver := resolve.New(norm, similarity.NewScorer(norm))
	return NewAnalysisService(resolver, registry.NewStore(names...), 0.85, 0.75, zap.NewNop())
}

func TestAnalyzeBatch(t *testing.T) {
	svc := newService("Parigi", "Blue Ocean")
	records := []domain.Label{
		domain.ParseLabel("Restaurants -> Parigi"),
		domain.ParseLabel("Restaurants -> Blue Ocean"),
		domain.ParseLabel("Restaurants -> Sakura"),
		domain.ParseLabel("mood"),
		domain.ParseLabel("Restaurants -> Drop"),
	}
	vectors := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
		{1, 2}, // divergent dimensionality, filtered
	}

	analysis, err := svc.AnalyzeBatch(records, vectors)
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Batch.ID)
	assert.Equal(t, 1, analysis.Batch.Rejected)
	require.Len(t, analysis.Batch.Vectors, 4)
	assert.Len(t, analysis.Points, 4)
	assert.Len(t, analysis.Clusters, 4)
	require.Len(t, analysis.Matches, 4)

	assert.Equal(t, domain.MatchExact, analysis.Matches[0].Method)
	assert.Equal(t, "Parigi", analysis.Matches[0].Matched)
	assert.Equal(t, domain.MatchExact, analysis.Matches[1].Method)
	assert.Equal(t, domain.MatchNone, analysis.Matches[2].Method)
	assert.Equal(t, domain.MatchNone, analysis.Matches[3].Method)
	assert.Equal(t, 2, analysis.Unmatched)

	assert.Equal(t, []string{"Parigi", "Blue Ocean", "Sakura", "Drop"},
		analysis.Batch.Taxonomy["Restaurants"])
}

func TestAnalyzeBatchEmpty(t *testing.T) {
	svc := newService("Parigi")
	analysis, err := svc.AnalyzeBatch(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, analysis.Points)
	assert.Empty(t, analysis.Clusters)
	assert.Empty(t, analysis.Matches)
}

func TestAnalyzeBatchLengthMismatch(t *testing.T) {
	svc := newService()
	_, err := svc.AnalyzeBatch([]domain.Label{domain.ParseLabel("a")}, nil)
	assert.Error(t, err)
}

func TestResolveName(t *testing.T) {
	svc := newService("Parigi")
	res, err := svc.ResolveName("Parigi")
	require.NoError(t, err)
	assert.Equal(t, domain.MatchExact, res.Method)

	res, err = svc.ResolveName("Bistrot Parigi")
	require.NoError(t, err)
	assert.Equal(t, domain.MatchNone, res.Method)
}

func TestIngestUploads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "embeddings.json")
	data := `[
		{"_id": "1", "Restaurants -> Parigi": [1, 0, 0]},
		{"_id": "2", "Restaurants -> Blue Ocean": [0, 1, 0]},
		{"_id": "3", "broken": "row"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	svc := newService("Parigi", "Blue Ocean")
	analysis, err := svc.IngestUploads([]string{path})
	require.NoError(t, err)
	assert.Len(t, analysis.Points, 2)
	assert.Equal(t, domain.MatchExact, analysis.Matches[0].Method)
}

func TestIngestUploadsNoFiles(t *testing.T) {
	svc := newService()
	_, err := svc.IngestUploads([]string{filepath.Join(t.TempDir(), "*.txt")})
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc := newService("Parigi")
	analysis, err := svc.AnalyzeBatch(
		[]domain.Label{domain.ParseLabel("Restaurants -> Parigi")},
		[][]float64{{1, 2}},
	)
	require.NoError(t, err)
	got := Summary(analysis)
	assert.Contains(t, got, "1 vectors")
	assert.Contains(t, got, "1 categories")
}
