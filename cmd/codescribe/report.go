package main

import (
	"context"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
)

// runReport is out of scope (report rendering is explicitly mechanical per
// the spec's Non-goals). It exists so the subcommand surface is complete and
// fails clearly rather than silently, instead of falling through to the
// unknown-subcommand branch.
func runReport(ctx context.Context, application *app.App, logger arbor.ILogger) {
	logger.Warn().Str("project", application.Config.Project.Name).Msg("report rendering is not implemented")
}
