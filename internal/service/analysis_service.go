package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tastemap/internal/cluster"
	"tastemap/internal/domain"
	"tastemap/internal/ingest"
	"tastemap/internal/projection"
	"tastemap/internal/resolve"
	"tastemap/internal/taxonomy"
)

// AnalysisService runs the embedding-analysis pipeline over uploaded
// batches and reconciles names against the canonical registry. All state
// lives in the inputs and outputs; the service itself only carries its
// collaborators, so concurrent calls are safe.
type AnalysisService struct {
	resolver          *resolve.Resolver
	registry          domain.Registry
	registryThreshold float64
	labelThreshold    float64
	log               *zap.Logger
}

func NewAnalysisService(resolver *resolve.Resolver, registry domain.Registry, registryThreshold, labelThreshold float64, log *zap.Logger) *AnalysisService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalysisService{
		resolver:          resolver,
		registry:          registry,
		registryThreshold: registryThreshold,
		labelThreshold:    labelThreshold,
		log:               log,
	}
}

// IngestUploads reads one or more embedding-export JSON files (glob
// patterns allowed) into a single batch and analyzes it.
func (s *AnalysisService) IngestUploads(paths []string) (domain.Analysis, error) {
	var records []domain.Label
	var vectors [][]float64
	skipped := 0
	seen := 0
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".json") {
				continue
			}
			labels, vecs, stats, err := ingest.ReadUpload(m)
			if err != nil {
				return domain.Analysis{}, err
			}
			records = append(records, labels...)
			vectors = append(vectors, vecs...)
			skipped += stats.Skipped
			seen++
		}
	}
	if seen == 0 {
		return domain.Analysis{}, fmt.Errorf("no .json uploads found")
	}
	if skipped > 0 {
		s.log.Warn("skipped malformed upload rows", zap.Int("skipped", skipped))
	}
	return s.AnalyzeBatch(records, vectors)
}

// AnalyzeBatch runs aggregation, projection, clustering and registry
// resolution over one batch. Data-quality problems (divergent vector
// dimensionality, unmatched names) are absorbed into counts; only caller
// contract violations return an error.
func (s *AnalysisService) AnalyzeBatch(records []domain.Label, vectors [][]float64) (domain.Analysis, error) {
	batch, err := taxonomy.Aggregate(records, vectors)
	if err != nil {
		return domain.Analysis{}, err
	}
	batch.ID = uuid.NewString()
	if batch.Rejected > 0 {
		s.log.Warn("rejected vectors with divergent dimensionality",
			zap.String("batch", batch.ID),
			zap.Int("rejected", batch.Rejected),
			zap.Int("admitted", len(batch.Vectors)))
	}

	points := projection.Project(batch.Vectors)
	clusters := cluster.Assign(points, cluster.Euclidean)

	names := s.registry.All()
	matches := make([]domain.MatchResult, len(batch.Labels))
	unmatched := 0
	for i, label := range batch.Labels {
		match, err := s.resolver.Resolve(label.Concept, names, s.labelThreshold)
		if err != nil {
			return domain.Analysis{}, err
		}
		matches[i] = match
		if match.Method == domain.MatchNone {
			unmatched++
		}
	}
	if unmatched > 0 {
		s.log.Info("labels without a canonical match",
			zap.String("batch", batch.ID),
			zap.Int("unmatched", unmatched))
	}

	return domain.Analysis{
		Batch:     batch,
		Points:    points,
		Clusters:  clusters,
		Matches:   matches,
		Unmatched: unmatched,
	}, nil
}

// ResolveName reconciles a single candidate against the registry using the
// high spreadsheet-consistency threshold.
func (s *AnalysisService) ResolveName(candidate string) (domain.MatchResult, error) {
	return s.resolver.Resolve(candidate, s.registry.All(), s.registryThreshold)
}

// Summary renders a one-line description of an analysis for display.
func Summary(a domain.Analysis) string {
	k := 0
	for _, c := range a.Clusters {
		if c+1 > k {
			k = c + 1
		}
	}
	return fmt.Sprintf("%d vectors (%d rejected), %d categories, %d clusters, %d unmatched names",
		len(a.Batch.Vectors), a.Batch.Rejected, len(a.Batch.Taxonomy), k, a.Unmatched)
}
