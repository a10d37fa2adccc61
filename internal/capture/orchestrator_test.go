package capture

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/embeddings"
	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/models"
)

type fakeWalker struct {
	files map[string]string // filepath -> content
}

func (w *fakeWalker) Walk(ctx context.Context, root string, visit interfaces.FileVisitor) error {
	for path, content := range w.files {
		content := content
		err := visit(ctx, interfaces.WalkedFile{Filepath: path}, func() (string, error) { return content, nil })
		if err != nil {
			return err
		}
	}
	return nil
}

type fakeStore struct {
	mu      sync.Mutex
	records map[string]*models.SourceRecord
	deleted int
}

func newFakeStore() *fakeStore { return &fakeStore{records: map[string]*models.SourceRecord{}} }

func (s *fakeStore) InsertSource(ctx context.Context, record *models.SourceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Filepath] = record
	return nil
}
func (s *fakeStore) DoesSourceExist(ctx context.Context, key models.SourceKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[key.Filepath]
	return ok, nil
}
func (s *fakeStore) GetSource(ctx context.Context, key models.SourceKey) (*models.SourceRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[key.Filepath]
	return r, ok, nil
}
func (s *fakeStore) ListSourcesByProject(ctx context.Context, projectName string) ([]*models.SourceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.SourceRecord
	for _, r := range s.records {
		out = append(out, r)
	}
	return out, nil
}
func (s *fakeStore) DeleteSourcesByProject(ctx context.Context, projectName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = len(s.records)
	s.records = map[string]*models.SourceRecord{}
	return s.deleted, nil
}
func (s *fakeStore) CreateOrReplaceAppSummary(ctx context.Context, summary *models.AppSummaryRecord) error {
	return nil
}
func (s *fakeStore) GetAppSummary(ctx context.Context, projectName string) (*models.AppSummaryRecord, bool, error) {
	return nil, false, nil
}
func (s *fakeStore) SearchBySummaryVector(ctx context.Context, projectName string, query []float32, topK int) ([]*models.SourceRecord, error) {
	return nil, nil
}
func (s *fakeStore) Close() error { return nil }

func newTestOrchestrator(files map[string]string) (*Orchestrator, *fakeStore) {
	adapter := &scriptedAdapter{
		results: []llm.InvocationResult{
			{Status: llm.StatusCompleted, Generated: `{"purpose": "p", "implementation": "i"}`},
		},
		embedVector: []float32{0.1, 0.2, 0.3},
	}
	summarizer := newTestSummarizer(adapter)
	embedder := embeddings.New(adapter, arbor.NewLogger())
	store := newFakeStore()
	orch := NewOrchestrator(&fakeWalker{files: files}, store, summarizer, embedder, 4, arbor.NewLogger())
	return orch, store
}

func TestRun_CapturesEveryNonBinaryFile(t *testing.T) {
	orch, store := newTestOrchestrator(map[string]string{
		"main.go":     "package main",
		"image.png":   "binary-ish",
		"readme.md":   "# hi",
	})

	require.NoError(t, orch.Run(context.Background(), "proj", "/src", true))

	assert.Len(t, store.records, 2)
	_, hasImage := store.records["image.png"]
	assert.False(t, hasImage)
}

func TestRun_EmptyFileAfterTrimIsSkipped(t *testing.T) {
	orch, store := newTestOrchestrator(map[string]string{"empty.go": "   \n  "})

	require.NoError(t, orch.Run(context.Background(), "proj", "/src", true))

	assert.Empty(t, store.records)
}

func TestRun_IdempotentModeSkipsAlreadyCaptured(t *testing.T) {
	orch, store := newTestOrchestrator(map[string]string{"main.go": "package main"})
	store.records["main.go"] = &models.SourceRecord{ProjectName: "proj", Filepath: "main.go", Content: "old content"}

	require.NoError(t, orch.Run(context.Background(), "proj", "/src", true))

	assert.Equal(t, "old content", store.records["main.go"].Content)
}

func TestRun_FullRecaptureDeletesExistingRecordsFirst(t *testing.T) {
	orch, store := newTestOrchestrator(map[string]string{"main.go": "package main"})
	store.records["stale.go"] = &models.SourceRecord{ProjectName: "proj", Filepath: "stale.go"}

	require.NoError(t, orch.Run(context.Background(), "proj", "/src", false))

	assert.Equal(t, 1, store.deleted)
	_, hasStale := store.records["stale.go"]
	assert.False(t, hasStale)
	_, hasMain := store.records["main.go"]
	assert.True(t, hasMain)
}

func TestRun_CapturedRecordHasBothVectorsPopulated(t *testing.T) {
	orch, store := newTestOrchestrator(map[string]string{"main.go": "package main"})

	require.NoError(t, orch.Run(context.Background(), "proj", "/src", true))

	record := store.records["main.go"]
	require.NotNil(t, record)
	assert.NotNil(t, record.Summary)
	assert.NotEmpty(t, record.ContentVector)
	assert.NotEmpty(t, record.SummaryVector)
}
