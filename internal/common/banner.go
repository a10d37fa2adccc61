package common

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner
func PrintBanner(config *Config, logger arbor.ILogger) {
	version := GetVersion()
	build := GetBuild()

	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(80)

	fmt.Printf("\n")
	b.PrintTopLine()
	b.PrintCenteredText("CODESCRIBE")
	b.PrintCenteredText("Codebase Capture and Summarization Engine")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", version, 15)
	b.PrintKeyValue("Build", build, 15)
	b.PrintKeyValue("Project", config.Project.Name, 15)
	b.PrintKeyValue("Source", config.Project.SourcePath, 15)
	b.PrintKeyValue("LLM Provider", config.LLM.DefaultProvider, 15)
	b.PrintBottomLine()
	fmt.Printf("\n")

	logger.Info().
		Str("version", version).
		Str("build", build).
		Str("project", config.Project.Name).
		Str("source_path", config.Project.SourcePath).
		Str("llm_provider", config.LLM.DefaultProvider).
		Msg("Application started")

	printCapabilities(config, logger)
	fmt.Printf("\n")
}

// printCapabilities displays the system capabilities
func printCapabilities(config *Config, logger arbor.ILogger) {
	fmt.Printf("Enabled features:\n")
	fmt.Printf("  - Capture orchestrator (concurrency=%d, idempotent=%v)\n", config.Capture.MaxConcurrency, config.Capture.SkipAlreadyProcessed)
	fmt.Printf("  - LLM execution pipeline (primary=%s, secondary=%s)\n", config.LLM.DefaultProvider, config.LLM.SecondaryProvider)
	fmt.Printf("  - Embedding generation (dimension=%d)\n", config.LLM.EmbeddingDimension)
	fmt.Printf("  - Badger document store (%s)\n", config.Storage.Badger.Path)

	logger.Info().
		Int("max_concurrency", config.Capture.MaxConcurrency).
		Bool("skip_already_processed", config.Capture.SkipAlreadyProcessed).
		Str("primary_provider", config.LLM.DefaultProvider).
		Str("secondary_provider", config.LLM.SecondaryProvider).
		Int("embedding_dimension", config.LLM.EmbeddingDimension).
		Msg("System capabilities")
}

// PrintShutdownBanner displays the application shutdown banner
func PrintShutdownBanner(logger arbor.ILogger) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorGreen).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(42)

	b.PrintTopLine()
	b.PrintCenteredText("SHUTTING DOWN")
	b.PrintCenteredText("CODESCRIBE")
	b.PrintBottomLine()
	fmt.Println()

	logger.Info().Msg("Application shutting down")
}

// PrintColorizedMessage prints a message with specified color. It does not
// log; the Print* helpers below log the message themselves.
func PrintColorizedMessage(color, message string, logger arbor.ILogger) {
	fmt.Printf("%s%s%s\n", color, message, banner.ColorReset)
}

// PrintSuccess prints a success message in green and logs it
func PrintSuccess(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorGreen, fmt.Sprintf("[ok] %s", message), logger)
	logger.Info().Str("type", "success").Msg(message)
}

// PrintError prints an error message in red and logs it
func PrintError(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorRed, fmt.Sprintf("[fail] %s", message), logger)
	logger.Error().Str("type", "error").Msg(message)
}

// PrintWarning prints a warning message in yellow and logs it
func PrintWarning(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorYellow, fmt.Sprintf("[warn] %s", message), logger)
	logger.Warn().Str("type", "warning").Msg(message)
}

// PrintInfo prints an info message in cyan and logs it
func PrintInfo(message string) {
	logger := GetLogger()
	PrintColorizedMessage(banner.ColorCyan, fmt.Sprintf("[info] %s", message), logger)
	logger.Info().Str("type", "info").Msg(message)
}
