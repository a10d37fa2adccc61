package main

import (
	"context"
	"os"
	"os/exec"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
)

// runMCPServe delegates to the standalone codescribe-mcp binary rather than
// embedding the MCP server in this process, keeping the query-serving
// surface (read-only, long-lived) separate from the capture run's lifetime.
func runMCPServe(ctx context.Context, application *app.App, logger arbor.ILogger) {
	binPath, err := exec.LookPath("codescribe-mcp")
	if err != nil {
		logger.Fatal().Err(err).Msg("codescribe-mcp binary not found on PATH")
		os.Exit(exitInfrastructure)
	}

	cmd := exec.CommandContext(ctx, binPath, os.Args[2:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info().Str("project", application.Config.Project.Name).Msg("delegating to codescribe-mcp")
	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Msg("codescribe-mcp exited with error")
		os.Exit(exitInfrastructure)
	}
}
