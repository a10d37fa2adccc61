package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
	"github.com/ternarybob/codescribe/internal/models"
)

// runTestDB round-trips a throwaway record through the configured store:
// insert, existence check, read-back, delete. Verifies the Badger path is
// writable and badgerhold's encoding survives a cycle before a real run.
func runTestDB(ctx context.Context, application *app.App, logger arbor.ILogger) {
	const probeProject = "__codescribe_test_db_probe__"
	probe := &models.SourceRecord{
		ProjectName: probeProject,
		Filepath:    "probe.txt",
		Filename:    "probe.txt",
		Type:        "text",
		LinesCount:  1,
		Content:     "probe",
		CapturedAt:  time.Now(),
	}

	if err := application.Store.InsertSource(ctx, probe); err != nil {
		fmt.Println("FAIL: insert:", err)
		os.Exit(exitInfrastructure)
	}

	exists, err := application.Store.DoesSourceExist(ctx, probe.Key())
	if err != nil || !exists {
		fmt.Println("FAIL: existence check:", err)
		os.Exit(exitInfrastructure)
	}

	readBack, found, err := application.Store.GetSource(ctx, probe.Key())
	if err != nil || !found || readBack.Content != probe.Content {
		fmt.Println("FAIL: read-back mismatch:", err)
		os.Exit(exitInfrastructure)
	}

	if _, err := application.Store.DeleteSourcesByProject(ctx, probeProject); err != nil {
		fmt.Println("FAIL: cleanup:", err)
		os.Exit(exitInfrastructure)
	}

	fmt.Println("OK: store round-trip succeeded")
	logger.Info().Str("path", application.Config.Storage.Badger.Path).Msg("test-db probe succeeded")
}
