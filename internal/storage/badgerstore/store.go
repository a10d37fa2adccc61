package badgerstore

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/codescribe/internal/models"
)

// Store implements interfaces.Store over a Badger-backed badgerhold handle.
type Store struct {
	db     *DB
	logger arbor.ILogger
}

func NewStore(db *DB, logger arbor.ILogger) *Store {
	return &Store{db: db, logger: logger}
}

func sourceDocKey(key models.SourceKey) string {
	return key.ProjectName + "|" + key.Filepath
}

func (s *Store) InsertSource(ctx context.Context, record *models.SourceRecord) error {
	key := sourceDocKey(record.Key())
	if err := s.db.store.Upsert(key, record); err != nil {
		return fmt.Errorf("failed to upsert source record %q: %w", key, err)
	}
	return nil
}

func (s *Store) DoesSourceExist(ctx context.Context, key models.SourceKey) (bool, error) {
	var record models.SourceRecord
	err := s.db.store.Get(sourceDocKey(key), &record)
	if err == badgerhold.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check source existence: %w", err)
	}
	return true, nil
}

func (s *Store) GetSource(ctx context.Context, key models.SourceKey) (*models.SourceRecord, bool, error) {
	var record models.SourceRecord
	err := s.db.store.Get(sourceDocKey(key), &record)
	if err == badgerhold.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get source record: %w", err)
	}
	return &record, true, nil
}

func (s *Store) ListSourcesByProject(ctx context.Context, projectName string) ([]*models.SourceRecord, error) {
	var records []models.SourceRecord
	err := s.db.store.Find(&records, badgerhold.Where("ProjectName").Eq(projectName))
	if err != nil {
		return nil, fmt.Errorf("failed to list sources for project %q: %w", projectName, err)
	}

	out := make([]*models.SourceRecord, len(records))
	for i := range records {
		out[i] = &records[i]
	}
	return out, nil
}

func (s *Store) DeleteSourcesByProject(ctx context.Context, projectName string) (int, error) {
	records, err := s.ListSourcesByProject(ctx, projectName)
	if err != nil {
		return 0, err
	}
	for _, record := range records {
		if err := s.db.store.Delete(sourceDocKey(record.Key()), &models.SourceRecord{}); err != nil && err != badgerhold.ErrNotFound {
			return 0, fmt.Errorf("failed to delete source record for %q: %w", record.Filepath, err)
		}
	}
	return len(records), nil
}

func (s *Store) CreateOrReplaceAppSummary(ctx context.Context, summary *models.AppSummaryRecord) error {
	if err := s.db.store.Upsert(summary.ProjectName, summary); err != nil {
		return fmt.Errorf("failed to upsert app summary for %q: %w", summary.ProjectName, err)
	}
	return nil
}

func (s *Store) GetAppSummary(ctx context.Context, projectName string) (*models.AppSummaryRecord, bool, error) {
	var summary models.AppSummaryRecord
	err := s.db.store.Get(projectName, &summary)
	if err == badgerhold.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get app summary: %w", err)
	}
	return &summary, true, nil
}

// SearchBySummaryVector ranks a project's records by cosine similarity to
// query. badgerhold has no vector index, so this scans every record for the
// project — acceptable at the capture-report scale this store targets, not
// intended for large-corpus nearest-neighbor search.
func (s *Store) SearchBySummaryVector(ctx context.Context, projectName string, query []float32, topK int) ([]*models.SourceRecord, error) {
	records, err := s.ListSourcesByProject(ctx, projectName)
	if err != nil {
		return nil, err
	}

	type scored struct {
		record *models.SourceRecord
		score  float64
	}

	var candidates []scored
	for _, record := range records {
		if len(record.SummaryVector) == 0 {
			continue
		}
		candidates = append(candidates, scored{record: record, score: cosineSimilarity(query, record.SummaryVector)})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if topK > len(candidates) {
		topK = len(candidates)
	}

	out := make([]*models.SourceRecord, topK)
	for i := 0; i < topK; i++ {
		out[i] = candidates[i].record
	}
	return out, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return -1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func (s *Store) Close() error {
	return s.db.Close()
}
