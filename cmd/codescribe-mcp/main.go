// Command codescribe-mcp exposes the captured document store as read-only
// MCP tools (spec.md "External Collaborator Interfaces", C12): query_source,
// list_captured_files, get_app_summary, search_similar_sources. It never
// writes to the store.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbormodels "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/storage/badgerstore"
)

func main() {
	configPath := os.Getenv("CODESCRIBE_CONFIG")
	if configPath == "" {
		configPath = "codescribe.toml"
	}

	cfg, err := common.LoadFromFiles(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Console-only, warn-level: stdout is the MCP stdio transport.
	logger := arbor.NewLogger().WithConsoleWriter(arbormodels.WriterConfiguration{
		Type:             arbormodels.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	db, err := badgerstore.Open(&cfg.Storage.Badger, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer db.Close()

	store := badgerstore.NewStore(db, logger)

	mcpServer := server.NewMCPServer(
		"codescribe",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createQuerySourceTool(), handleQuerySource(store, logger))
	mcpServer.AddTool(createListCapturedFilesTool(), handleListCapturedFiles(store, logger))
	mcpServer.AddTool(createGetAppSummaryTool(), handleGetAppSummary(store, logger))
	mcpServer.AddTool(createSearchSimilarTool(), handleSearchSimilar(store, logger))

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
