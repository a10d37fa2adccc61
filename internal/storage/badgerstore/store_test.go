package badgerstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(&common.BadgerConfig{Path: filepath.Join(t.TempDir(), "db")}, arbor.NewLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, arbor.NewLogger())
}

func TestInsertAndGetSource_RoundTrips(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	record := &models.SourceRecord{ProjectName: "proj", Filepath: "main.go", Content: "package main"}

	require.NoError(t, s.InsertSource(ctx, record))

	got, found, err := s.GetSource(ctx, record.Key())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "package main", got.Content)
}

func TestGetSource_MissingKeyIsNotAnError(t *testing.T) {
	s := newTestStore(t)
	_, found, err := s.GetSource(context.Background(), models.SourceKey{ProjectName: "nope", Filepath: "x.go"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDoesSourceExist_TrueAfterInsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	record := &models.SourceRecord{ProjectName: "proj", Filepath: "a.go"}
	require.NoError(t, s.InsertSource(ctx, record))

	exists, err := s.DoesSourceExist(ctx, record.Key())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInsertSource_ReplacesExistingRecordAtSameKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	key := models.SourceKey{ProjectName: "proj", Filepath: "a.go"}

	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: key.ProjectName, Filepath: key.Filepath, Content: "v1"}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: key.ProjectName, Filepath: key.Filepath, Content: "v2"}))

	got, found, err := s.GetSource(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", got.Content)
}

func TestListSourcesByProject_OnlyReturnsMatchingProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj-a", Filepath: "a.go"}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj-b", Filepath: "b.go"}))

	records, err := s.ListSourcesByProject(ctx, "proj-a")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a.go", records[0].Filepath)
}

func TestDeleteSourcesByProject_RemovesOnlyThatProjectsRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj-a", Filepath: "a.go"}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj-a", Filepath: "b.go"}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj-b", Filepath: "c.go"}))

	deleted, err := s.DeleteSourcesByProject(ctx, "proj-a")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := s.ListSourcesByProject(ctx, "proj-b")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestAppSummary_CreateOrReplaceThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateOrReplaceAppSummary(ctx, &models.AppSummaryRecord{ProjectName: "proj"}))

	_, found, err := s.GetAppSummary(ctx, "proj")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSearchBySummaryVector_RanksNearestFirstAndSkipsVectorlessRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj", Filepath: "close.go", SummaryVector: []float32{1, 0, 0}}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj", Filepath: "far.go", SummaryVector: []float32{0, 1, 0}}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj", Filepath: "no-vector.go"}))

	results, err := s.SearchBySummaryVector(ctx, "proj", []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "close.go", results[0].Filepath)
}

func TestSearchBySummaryVector_TopKCapsResultCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj", Filepath: "a.go", SummaryVector: []float32{1, 0}}))
	require.NoError(t, s.InsertSource(ctx, &models.SourceRecord{ProjectName: "proj", Filepath: "b.go", SummaryVector: []float32{0, 1}}))

	results, err := s.SearchBySummaryVector(ctx, "proj", []float32{1, 0}, 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestOpen_ResetOnStartupWipesExistingData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	db1, err := Open(&common.BadgerConfig{Path: dir}, arbor.NewLogger())
	require.NoError(t, err)
	s1 := NewStore(db1, arbor.NewLogger())
	require.NoError(t, s1.InsertSource(context.Background(), &models.SourceRecord{ProjectName: "proj", Filepath: "a.go"}))
	require.NoError(t, db1.Close())

	db2, err := Open(&common.BadgerConfig{Path: dir, ResetOnStartup: true}, arbor.NewLogger())
	require.NoError(t, err)
	defer db2.Close()
	s2 := NewStore(db2, arbor.NewLogger())

	exists, err := s2.DoesSourceExist(context.Background(), models.SourceKey{ProjectName: "proj", Filepath: "a.go"})
	require.NoError(t, err)
	assert.False(t, exists)
}
