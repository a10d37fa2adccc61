package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/codescribe/internal/models"
)

// formatSourceRecord renders one captured file's record as markdown.
func formatSourceRecord(record *models.SourceRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", record.Filepath))
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", record.ProjectName))
	sb.WriteString(fmt.Sprintf("**Type:** %s\n", record.Type))
	sb.WriteString(fmt.Sprintf("**Lines:** %d\n", record.LinesCount))
	sb.WriteString(fmt.Sprintf("**Captured:** %s\n\n", record.CapturedAt.Format(time.RFC3339)))

	if record.SummaryError != "" {
		sb.WriteString(fmt.Sprintf("**Summary failed:** %s\n\n", record.SummaryError))
	} else if record.Summary != nil {
		sb.WriteString("## Summary\n\n")
		summaryJSON, _ := json.MarshalIndent(record.Summary, "", "  ")
		sb.WriteString("```json\n")
		sb.WriteString(string(summaryJSON))
		sb.WriteString("\n```\n\n")
	}

	sb.WriteString("## Content\n\n```\n")
	sb.WriteString(record.Content)
	sb.WriteString("\n```\n")

	return sb.String()
}

// formatFileList renders a project's captured files as a markdown table.
func formatFileList(projectName string, records []*models.SourceRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Captured Files for %s (%d files)\n\n", projectName, len(records)))

	if len(records) == 0 {
		sb.WriteString("No files captured for this project.\n")
		return sb.String()
	}

	sb.WriteString("| Filepath | Type | Lines | Summary |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, r := range records {
		status := "ok"
		if r.SummaryError != "" {
			status = "failed: " + r.SummaryError
		} else if r.Summary == nil {
			status = "none"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d | %s |\n", r.Filepath, r.Type, r.LinesCount, status))
	}

	return sb.String()
}

// formatAppSummary renders a project's aggregate summary as markdown.
func formatAppSummary(summary *models.AppSummaryRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Application Summary: %s\n\n", summary.ProjectName))
	sb.WriteString(fmt.Sprintf("**Updated:** %s\n\n", summary.UpdatedAt.Format(time.RFC3339)))

	if summary.AppDescription != "" {
		sb.WriteString(summary.AppDescription)
		sb.WriteString("\n\n")
	}
	if summary.InferredArchitecture != "" {
		sb.WriteString(fmt.Sprintf("**Inferred architecture:** %s\n\n", summary.InferredArchitecture))
	}
	if len(summary.BusinessProcesses) > 0 {
		sb.WriteString(fmt.Sprintf("**Business processes:** %s\n\n", strings.Join(summary.BusinessProcesses, ", ")))
	}
	if len(summary.BoundedContexts) > 0 {
		sb.WriteString(fmt.Sprintf("**Bounded contexts:** %s\n\n", strings.Join(summary.BoundedContexts, ", ")))
	}
	if len(summary.PotentialMicroservices) > 0 {
		sb.WriteString(fmt.Sprintf("**Potential microservices:** %s\n\n", strings.Join(summary.PotentialMicroservices, ", ")))
	}
	if len(summary.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("**Technologies:** %s\n\n", strings.Join(summary.Technologies, ", ")))
	}

	return sb.String()
}

// formatSimilarSources renders a ranked similarity result list as markdown.
func formatSimilarSources(reference string, records []*models.SourceRecord) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Files Similar to %s (%d results)\n\n", reference, len(records)))

	if len(records) == 0 {
		sb.WriteString("No similar files found.\n")
		return sb.String()
	}

	for i, r := range records {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, r.Filepath, r.Type))
	}

	return sb.String()
}
