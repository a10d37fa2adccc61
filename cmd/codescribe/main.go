package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/app"
	"github.com/ternarybob/codescribe/internal/common"
)

// Exit codes from spec.md §6.
const (
	exitSuccess           = 0
	exitInfrastructure    = 1
	exitConfigurationErr  = 2
)

// configPaths is a repeatable -config flag, later files overriding earlier
// ones, mirroring the teacher's multi-config-file CLI convention.
type configPaths []string

func (c *configPaths) String() string { return fmt.Sprintf("%v", *c) }

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles    configPaths
	sourcePath     = flag.String("source", "", "Source path or github:owner/repo[@ref] (overrides config)")
	projectName    = flag.String("project", "", "Project name (overrides config)")
	maxConcurrency = flag.Int("concurrency", 0, "Worker pool size (overrides config)")
	showVersion    = flag.Bool("version", false, "Print version information")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (repeatable, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("codescribe version %s\n", common.GetVersion())
		os.Exit(exitSuccess)
	}

	subcommand := "capture"
	if args := flag.Args(); len(args) > 0 {
		subcommand = args[0]
	}

	// Startup sequence (required order): load config -> CLI overrides ->
	// init logger -> print banner.
	if len(configFiles) == 0 {
		if _, err := os.Stat("codescribe.toml"); err == nil {
			configFiles = append(configFiles, "codescribe.toml")
		}
	}

	cfg, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Err(err).Msg("failed to load configuration")
		os.Exit(exitConfigurationErr)
	}

	common.ApplyFlagOverrides(cfg, *sourcePath, *projectName, *maxConcurrency)

	logger := common.SetupLogger(cfg)
	runID := uuid.New().String()
	logger = logger.WithCorrelationId(runID)
	common.PrintBanner(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
		os.Exit(exitInfrastructure)
	}
	defer application.Close()

	installSignalHandler(cancel, logger, cfg.Capture.DrainTimeoutSeconds)

	switch subcommand {
	case "capture":
		runCapture(ctx, application, logger)
	case "insights":
		runInsights(ctx, application, logger)
	case "report":
		runReport(ctx, application, logger)
	case "mcp-serve":
		runMCPServe(ctx, application, logger)
	case "test-llms":
		runTestLLMs(ctx, application, logger)
	case "test-db":
		runTestDB(ctx, application, logger)
	default:
		logger.Fatal().Str("subcommand", subcommand).Msg("unknown subcommand")
		os.Exit(exitConfigurationErr)
	}
}

// installSignalHandler cancels ctx on SIGINT/SIGTERM, then gives in-flight
// tasks drainTimeoutSeconds to settle. If the run has returned by then, the
// deferred App.Close runs as usual; otherwise the process exits with
// exitInfrastructure once the window elapses, without running App.Close.
// A drainTimeoutSeconds of zero or less sets no window.
func installSignalHandler(cancel context.CancelFunc, logger arbor.ILogger, drainTimeoutSeconds int) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info().Msg("interrupt received, cancelling in-flight work")
		cancel()
		if drainTimeoutSeconds > 0 {
			time.Sleep(time.Duration(drainTimeoutSeconds) * time.Second)
			logger.Warn().Int("drain_timeout_seconds", drainTimeoutSeconds).Msg("drain window elapsed, exiting")
			os.Exit(exitInfrastructure)
		}
	}()
}
