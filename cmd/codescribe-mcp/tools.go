package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createQuerySourceTool returns the query_source tool definition.
func createQuerySourceTool() mcp.Tool {
	return mcp.NewTool("query_source",
		mcp.WithDescription("Retrieve one captured file's record (content, summary, type) by project and filepath"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name as configured at capture time"),
		),
		mcp.WithString("filepath",
			mcp.Required(),
			mcp.Description("Relative filepath as captured"),
		),
	)
}

// createListCapturedFilesTool returns the list_captured_files tool definition.
func createListCapturedFilesTool() mcp.Tool {
	return mcp.NewTool("list_captured_files",
		mcp.WithDescription("List every file captured for a project, with its canonical type and summary status"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name as configured at capture time"),
		),
	)
}

// createGetAppSummaryTool returns the get_app_summary tool definition.
func createGetAppSummaryTool() mcp.Tool {
	return mcp.NewTool("get_app_summary",
		mcp.WithDescription("Retrieve the project-level aggregate summary produced by insight synthesis, if one exists"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name as configured at capture time"),
		),
	)
}

// createSearchSimilarTool returns the search_similar_sources tool definition.
func createSearchSimilarTool() mcp.Tool {
	return mcp.NewTool("search_similar_sources",
		mcp.WithDescription("Rank a project's captured files by cosine similarity to a reference file's summary embedding"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project name as configured at capture time"),
		),
		mcp.WithString("reference_filepath",
			mcp.Required(),
			mcp.Description("Filepath of the captured file whose summary embedding seeds the search"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results to return (default: 10)"),
		),
	)
}
