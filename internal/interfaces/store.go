package interfaces

import (
	"context"

	"github.com/ternarybob/codescribe/internal/models"
)

// Store is the persistence boundary for captured source and derived
// aggregates (spec.md §4.12, C12). Implementations must make InsertSource
// idempotent on (ProjectName, Filepath) and must never panic on a missing
// key — absence is reported through the ok/found return, not an error.
type Store interface {
	// InsertSource creates or replaces the SourceRecord at its key. Replace
	// semantics support re-capture after a source file changes upstream.
	InsertSource(ctx context.Context, record *models.SourceRecord) error

	// DoesSourceExist reports whether a record is already stored at key,
	// used by the Capture Orchestrator's idempotent-skip check.
	DoesSourceExist(ctx context.Context, key models.SourceKey) (bool, error)

	// GetSource fetches one record by key. found is false, err is nil when
	// the key is simply absent.
	GetSource(ctx context.Context, key models.SourceKey) (record *models.SourceRecord, found bool, err error)

	// ListSourcesByProject returns every record captured for a project, in
	// no particular order.
	ListSourcesByProject(ctx context.Context, projectName string) ([]*models.SourceRecord, error)

	// DeleteSourcesByProject removes every record for a project. Used before
	// a full re-capture so stale files from a prior run don't linger.
	DeleteSourcesByProject(ctx context.Context, projectName string) (deleted int, err error)

	// CreateOrReplaceAppSummary atomically replaces the single app-level
	// summary aggregate for a project.
	CreateOrReplaceAppSummary(ctx context.Context, summary *models.AppSummaryRecord) error

	// GetAppSummary fetches the app-level summary aggregate for a project.
	GetAppSummary(ctx context.Context, projectName string) (summary *models.AppSummaryRecord, found bool, err error)

	// SearchBySummaryVector returns the topK records whose summary vector is
	// nearest to query, ordered nearest first.
	SearchBySummaryVector(ctx context.Context, projectName string, query []float32, topK int) ([]*models.SourceRecord, error)

	// Close releases underlying storage resources.
	Close() error
}
