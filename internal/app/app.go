// Package app is the composition root: it wires every component from
// internal/* into a runnable App, following the teacher's explicit
// constructor pattern rather than a reflective DI container.
package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/capture"
	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/embeddings"
	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/pipeline"
	"github.com/ternarybob/codescribe/internal/retry"
	"github.com/ternarybob/codescribe/internal/stats"
	"github.com/ternarybob/codescribe/internal/storage/badgerstore"
	"github.com/ternarybob/codescribe/internal/walker"
)

// App holds every wired component for one process lifetime.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	db    *badgerstore.DB
	Store interfaces.Store

	Adapters     []llm.Adapter
	Stats        *stats.Recorder
	Pipeline     *pipeline.Pipeline
	Summarizer   *capture.Summarizer
	Embedder     *embeddings.Pipeline
	Walker       interfaces.FileWalker
	Orchestrator *capture.Orchestrator
}

// New wires every component described in the component-design section:
// adapters (C4) -> retry (C5) -> pipeline (C7) -> summarizer (C8) ->
// orchestrator (C9), plus the embedding sub-pipeline (C10), stats (C11),
// and store/walker (C12).
func New(ctx context.Context, cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	db, err := badgerstore.Open(&cfg.Storage.Badger, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	app.db = db
	app.Store = badgerstore.NewStore(db, logger)

	adapters, err := llm.BuildAdapterChain(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build LLM adapter chain: %w", err)
	}
	app.Adapters = adapters

	app.Stats = stats.New(cfg.Logging.EchoStats)

	retryConfig := retry.Config{
		MaxAttempts:       cfg.LLM.MaxAttempts,
		MinRetryDelayMs:   cfg.LLM.MinRetryDelayMs,
		BackoffMultiplier: cfg.LLM.BackoffMultiplier,
		JitterFraction:    cfg.LLM.JitterFraction,
	}
	retrier := retry.New(retryConfig, common.NewRealClock(), app.Stats)
	app.Pipeline = pipeline.New(adapters, retrier, app.Stats)
	app.Summarizer = capture.NewSummarizer(app.Pipeline)

	// Embeddings always use the adapter that actually supports them
	// (Gemini in the default chain); the Claude adapter's Embed is a
	// documented no-op, so picking the last adapter in the chain is safe
	// as long as the secondary provider is the embedding-capable one.
	embedAdapter := adapters[len(adapters)-1]
	app.Embedder = embeddings.New(embedAdapter, logger)

	app.Walker = resolveWalker(ctx, cfg, logger)

	app.Orchestrator = capture.NewOrchestrator(
		app.Walker, app.Store, app.Summarizer, app.Embedder,
		cfg.Capture.MaxConcurrency, logger,
	)

	return app, nil
}

// resolveWalker honors CODEBASE_SOURCE's github: scheme (SPEC_FULL.md §6);
// anything else is treated as a local filesystem path.
func resolveWalker(ctx context.Context, cfg *common.Config, logger arbor.ILogger) interfaces.FileWalker {
	if owner, repo, ref, token, ok := parseGitHubSource(cfg.Project.SourcePath); ok {
		logger.Info().Str("owner", owner).Str("repo", repo).Str("ref", ref).Msg("using remote GitHub source")
		return walker.NewGitHubWalker(ctx, token, owner, repo, ref, cfg.Capture.IgnoreDirs, cfg.Capture.IgnoreFilenamePrefix)
	}
	return walker.NewLocalWalker(cfg.Capture.IgnoreDirs, cfg.Capture.IgnoreFilenamePrefix)
}

// Close releases every owned resource, following the teacher's
// log-then-close-in-dependency-order shutdown sequence.
func (a *App) Close() error {
	for _, adapter := range a.Adapters {
		if err := adapter.Close(); err != nil {
			a.Logger.Warn().Err(err).Str("adapter", adapter.Name()).Msg("failed to close LLM adapter")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
		a.Logger.Info().Msg("store closed")
	}

	common.Stop()
	return nil
}
