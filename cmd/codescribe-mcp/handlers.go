package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/models"
)

func errResult(format string, args ...any) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(fmt.Sprintf(format, args...))},
	}, nil
}

func textResult(text string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(text)}}, nil
}

// handleQuerySource implements the query_source tool.
func handleQuerySource(store interfaces.Store, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil || project == "" {
			return errResult("Error: project parameter is required")
		}
		filepath, err := request.RequireString("filepath")
		if err != nil || filepath == "" {
			return errResult("Error: filepath parameter is required")
		}

		record, found, err := store.GetSource(ctx, models.SourceKey{ProjectName: project, Filepath: filepath})
		if err != nil {
			logger.Error().Err(err).Str("project", project).Str("filepath", filepath).Msg("query_source failed")
			return errResult("Query error: %v", err)
		}
		if !found {
			return errResult("No record found for %s in project %s", filepath, project)
		}

		return textResult(formatSourceRecord(record))
	}
}

// handleListCapturedFiles implements the list_captured_files tool.
func handleListCapturedFiles(store interfaces.Store, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil || project == "" {
			return errResult("Error: project parameter is required")
		}

		records, err := store.ListSourcesByProject(ctx, project)
		if err != nil {
			logger.Error().Err(err).Str("project", project).Msg("list_captured_files failed")
			return errResult("List error: %v", err)
		}

		return textResult(formatFileList(project, records))
	}
}

// handleGetAppSummary implements the get_app_summary tool.
func handleGetAppSummary(store interfaces.Store, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil || project == "" {
			return errResult("Error: project parameter is required")
		}

		summary, found, err := store.GetAppSummary(ctx, project)
		if err != nil {
			logger.Error().Err(err).Str("project", project).Msg("get_app_summary failed")
			return errResult("Query error: %v", err)
		}
		if !found {
			return errResult("No app summary found for project %s", project)
		}

		return textResult(formatAppSummary(summary))
	}
}

// handleSearchSimilar implements the search_similar_sources tool. The
// reference file's own summary embedding seeds the search, so no LLM
// adapter is needed in this read-only process.
func handleSearchSimilar(store interfaces.Store, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil || project == "" {
			return errResult("Error: project parameter is required")
		}
		reference, err := request.RequireString("reference_filepath")
		if err != nil || reference == "" {
			return errResult("Error: reference_filepath parameter is required")
		}
		limit := request.GetInt("limit", 10)

		seed, found, err := store.GetSource(ctx, models.SourceKey{ProjectName: project, Filepath: reference})
		if err != nil {
			logger.Error().Err(err).Str("project", project).Str("filepath", reference).Msg("search_similar_sources lookup failed")
			return errResult("Query error: %v", err)
		}
		if !found || len(seed.SummaryVector) == 0 {
			return errResult("No summary embedding available for %s", reference)
		}

		records, err := store.SearchBySummaryVector(ctx, project, seed.SummaryVector, limit)
		if err != nil {
			logger.Error().Err(err).Str("project", project).Msg("search_similar_sources failed")
			return errResult("Search error: %v", err)
		}

		return textResult(formatSimilarSources(reference, records))
	}
}
