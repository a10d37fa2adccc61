package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
	"github.com/ternarybob/codescribe/internal/llm"
)

// runTestLLMs issues one trivial completion against every configured
// adapter and reports its classified status, for verifying credentials and
// connectivity before a full capture run.
func runTestLLMs(ctx context.Context, application *app.App, logger arbor.ILogger) {
	const probePrompt = `Respond with the single JSON object {"ok": true}.`

	failed := false
	for _, adapter := range application.Adapters {
		result := adapter.Complete(ctx, probePrompt, llm.CompletionOptions{})
		fmt.Printf("%-10s status=%-10s", adapter.Name(), result.Status)
		if result.Err != nil {
			fmt.Printf(" err=%v", result.Err)
		}
		fmt.Println()

		if result.Status != llm.StatusCompleted {
			failed = true
		}
		logger.Info().Str("adapter", adapter.Name()).Str("status", string(result.Status)).Msg("test-llms probe")
	}

	if failed {
		os.Exit(exitInfrastructure)
	}
}
