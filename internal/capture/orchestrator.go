package capture

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/embeddings"
	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/models"
)

// Orchestrator drives the Capture Orchestrator (C9): walking a source tree
// and dispatching one bounded-pool task per file.
type Orchestrator struct {
	walker      interfaces.FileWalker
	store       interfaces.Store
	summarizer  *Summarizer
	embedder    *embeddings.Pipeline
	logger      arbor.ILogger
	concurrency int
}

func NewOrchestrator(walker interfaces.FileWalker, store interfaces.Store, summarizer *Summarizer, embedder *embeddings.Pipeline, concurrency int, logger arbor.ILogger) *Orchestrator {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Orchestrator{
		walker:      walker,
		store:       store,
		summarizer:  summarizer,
		embedder:    embedder,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run implements spec.md §4.9: walk, optionally clear stale records, then
// dispatch one task per file onto a bounded worker pool. Partial per-file
// failures are logged and never abort the run.
func (o *Orchestrator) Run(ctx context.Context, projectName, sourceRoot string, ignoreIfAlreadyCaptured bool) error {
	if !ignoreIfAlreadyCaptured {
		deleted, err := o.store.DeleteSourcesByProject(ctx, projectName)
		if err != nil {
			return err
		}
		o.logger.Info().Str("project", projectName).Int("deleted", deleted).Msg("cleared existing records before full re-capture")
	}

	sem := make(chan struct{}, o.concurrency)
	var wg sync.WaitGroup
	var loggedSkipOnce sync.Once

	walkErr := o.walker.Walk(ctx, sourceRoot, func(ctx context.Context, file interfaces.WalkedFile, readContent func() (string, error)) error {
		if models.IsBinaryExtension(file.Filepath) {
			return nil
		}

		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			common.RunSafely(o.logger, file.Filepath, func() {
				o.processFile(ctx, projectName, file.Filepath, ignoreIfAlreadyCaptured, readContent, &loggedSkipOnce)
			})
		}()

		return ctx.Err()
	})

	wg.Wait()
	return walkErr
}

func (o *Orchestrator) processFile(ctx context.Context, projectName, filepathStr string, ignoreIfAlreadyCaptured bool, readContent func() (string, error), loggedSkipOnce *sync.Once) {
	key := models.SourceKey{ProjectName: projectName, Filepath: filepathStr}

	if ignoreIfAlreadyCaptured {
		exists, err := o.store.DoesSourceExist(ctx, key)
		if err != nil {
			o.logger.Warn().Err(err).Str("filepath", filepathStr).Msg("failed to check idempotence, proceeding")
		} else if exists {
			loggedSkipOnce.Do(func() {
				o.logger.Info().Msg("idempotent mode: skipping already-captured files")
			})
			return
		}
	}

	content, err := readContent()
	if err != nil {
		o.logger.Warn().Err(err).Str("filepath", filepathStr).Msg("failed to read file, skipping")
		return
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	outcome := o.summarizer.Summarize(ctx, filepathStr, content)

	var summaryVector, contentVector []float32
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		contentVector = o.embedder.Embed(ctx, filepathStr, content)
	}()
	go func() {
		defer wg.Done()
		if outcome.Summary != nil {
			summaryVector = o.embedder.Embed(ctx, filepathStr, summaryText(outcome.Summary))
		}
	}()
	wg.Wait()

	record := &models.SourceRecord{
		ProjectName:   projectName,
		Filepath:      filepathStr,
		Filename:      filepathBase(filepathStr),
		Type:          string(models.ResolveCanonicalType(filepathStr)),
		LinesCount:    strings.Count(content, "\n") + 1,
		Content:       content,
		Summary:       outcome.Summary,
		SummaryError:  outcome.Error,
		SummaryVector: summaryVector,
		ContentVector: contentVector,
		CapturedAt:    time.Now(),
	}

	if err := o.store.InsertSource(ctx, record); err != nil {
		o.logger.Warn().Err(err).Str("filepath", filepathStr).Msg("failed to insert source record")
	}
}

func summaryText(s *models.Summary) string {
	return s.Purpose + "\n" + s.Implementation
}

func filepathBase(p string) string {
	if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
		return p[idx+1:]
	}
	return p
}
