package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
	"github.com/ternarybob/codescribe/internal/stats"
)

// runCapture drives the Capture Orchestrator end to end (spec.md §4.9): walk
// the configured source, summarize and embed each file, then print the run's
// stats tally. Per-file failures never abort the run and never change the
// process exit code — only infrastructure failure (store unreachable, walk
// aborted) does.
func runCapture(ctx context.Context, application *app.App, logger arbor.ILogger) {
	cfg := application.Config

	err := application.Orchestrator.Run(ctx, cfg.Project.Name, cfg.Project.SourcePath, cfg.Capture.SkipAlreadyProcessed)

	printStatsTally(application.Stats, logger)

	if err != nil {
		logger.Error().Err(err).Msg("capture run aborted")
		os.Exit(exitInfrastructure)
	}

	logger.Info().Str("project", cfg.Project.Name).Msg("capture run complete")
}

func printStatsTally(recorder *stats.Recorder, logger arbor.ILogger) {
	snapshot := recorder.Snapshot()

	keys := make([]stats.Key, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	fmt.Println("\nCapture stats:")
	for _, key := range keys {
		s := snapshot[key]
		fmt.Printf("  %-16s %6d  %s\n", key, s.Count, s.Description)
	}

	logger.Info().Interface("stats", snapshot).Msg("capture stats")
}
