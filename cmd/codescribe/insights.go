package main

import (
	"context"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
)

// runInsights is out of core scope (spec.md Non-goals: report rendering and
// scheduled synthesis are mechanical). It wires robfig/cron so a configured
// schedule runs a one-shot app-summary placeholder job; the synthesis logic
// itself (turning captured summaries into an AppSummaryRecord) is not
// implemented here.
func runInsights(ctx context.Context, application *app.App, logger arbor.ILogger) {
	cfg := application.Config.Insights
	if !cfg.Enabled {
		logger.Info().Msg("insights scheduling disabled in config")
		return
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Schedule, func() {
		logger.Info().Str("project", application.Config.Project.Name).Msg("insights tick: app-summary synthesis not implemented")
	})
	if err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.Schedule).Msg("invalid insights cron schedule")
		os.Exit(exitConfigurationErr)
	}

	logger.Info().Str("schedule", cfg.Schedule).Msg("insights scheduler started")
	c.Start()
	defer c.Stop()

	<-ctx.Done()
}
