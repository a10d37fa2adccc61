// Package capture implements the File Summarizer (C8) and the Capture
// Orchestrator (C9): rendering one file's prompt and driving the bounded
// worker pool that walks a project's source tree.
package capture

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/models"
	"github.com/ternarybob/codescribe/internal/pipeline"
	"github.com/ternarybob/codescribe/internal/prompts"
	"github.com/ternarybob/codescribe/internal/validation"
)

// completionOptionsFor derives per-call options from a template. Complex
// schemas get a larger completion budget than the Claude adapter's default
// MaxTokens (8192). When MaxTokens is left at zero the Claude adapter uses its
// configured MaxTokens; the Gemini adapter sends no output-token limit.
// Temperature is left at zero, so neither adapter sends one and the
// provider's own default applies.
func completionOptionsFor(t prompts.Template) llm.CompletionOptions {
	opts := llm.CompletionOptions{
		SystemInstruction: "Respond with a single JSON object matching the requested fields. No markdown fences, no prose outside the JSON.",
	}
	if t.HasComplexSchema {
		opts.MaxTokens = 16384
	}
	return opts
}

// Summarizer renders a file's prompt from the registry template and drives
// it through the execution pipeline.
type Summarizer struct {
	pipeline *pipeline.Pipeline
}

func NewSummarizer(p *pipeline.Pipeline) *Summarizer {
	return &Summarizer{pipeline: p}
}

// SummaryOutcome is C8's return shape: exactly one of Summary / Error is set.
type SummaryOutcome struct {
	Summary *models.Summary
	Error   string
}

// Summarize resolves the canonical type, renders the prompt, and runs it
// through C7. filepathStr selects the canonical type and labels errors.
func (s *Summarizer) Summarize(ctx context.Context, filepathStr, content string) SummaryOutcome {
	detectedType := models.ResolveCanonicalType(filepathStr)
	template := prompts.Lookup(detectedType)

	prompt := renderPrompt(template, detectedType, content)
	schema := validation.Schema{RequiredFields: template.ResponseSchema}

	result := pipeline.Run(ctx, s.pipeline, filepathStr, prompt, schema, completionOptionsFor(template), func() any {
		return &models.Summary{}
	})

	if result.Error != "" {
		return SummaryOutcome{Error: result.Error}
	}

	summary, ok := result.Value.(*models.Summary)
	if !ok {
		return SummaryOutcome{Error: fmt.Sprintf("%s: unexpected pipeline result type", filepathStr)}
	}

	normalizeEnums(summary)
	return SummaryOutcome{Summary: summary}
}

// renderPrompt substitutes {contentDesc, instructions, jsonSchema, content}
// into the rendered prompt text, per spec.md §4.8. Markdown files get an
// outline hint ahead of their content, which the Markdown template leaves
// unfenced.
func renderPrompt(t prompts.Template, detectedType models.CanonicalFileType, content string) string {
	var body strings.Builder

	fmt.Fprintf(&body, "File type: %s\n", t.ContentDescription)
	fmt.Fprintf(&body, "Instructions: %s\n", t.Instructions)
	fmt.Fprintf(&body, "Required JSON fields: %v\n\n", t.ResponseSchema)

	if detectedType == models.TypeMarkdown {
		if outline := prompts.MarkdownOutline(content); len(outline) > 0 {
			fmt.Fprintf(&body, "Document outline:\n- %s\n\n", strings.Join(outline, "\n- "))
		}
	}

	if t.WrapContentInCodeBlock {
		body.WriteString("```\n")
		body.WriteString(content)
		body.WriteString("\n```\n")
	} else {
		body.WriteString(content)
	}

	return body.String()
}

func normalizeEnums(summary *models.Summary) {
	for i := range summary.PublicMethods {
		summary.PublicMethods[i].Complexity = validation.ComplexityOrDefault(summary.PublicMethods[i].Complexity)
		summary.PublicMethods[i].CodeSmells = validation.NormalizeCodeSmells(summary.PublicMethods[i].CodeSmells)
	}
	if summary.DatabaseIntegration != nil {
		summary.DatabaseIntegration.Mechanism = validation.NormalizeDBMechanism(summary.DatabaseIntegration.Mechanism)
	}
	for i := range summary.IntegrationPoints {
		summary.IntegrationPoints[i].Mechanism = validation.NormalizeIntegrationMechanism(summary.IntegrationPoints[i].Mechanism)
		summary.IntegrationPoints[i].Direction = validation.NormalizeIntegrationDirection(summary.IntegrationPoints[i].Direction)
		summary.IntegrationPoints[i].OperationType = validation.NormalizeOperationType(summary.IntegrationPoints[i].OperationType)
	}
	for i := range summary.DBOperations {
		summary.DBOperations[i].OperationType = validation.NormalizeOperationType(summary.DBOperations[i].OperationType)
	}
	if summary.CodeQualityMetrics != nil {
		summary.CodeQualityMetrics.Complexity = validation.ComplexityOrDefault(summary.CodeQualityMetrics.Complexity)
		summary.CodeQualityMetrics.CodeSmells = validation.NormalizeCodeSmells(summary.CodeQualityMetrics.CodeSmells)
	}
}
