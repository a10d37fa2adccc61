// Package pipeline implements the LLM Execution Pipeline (C7): the central
// state machine that drives an ordered adapter list through retry and
// fallback until a validated result is produced or every avenue is
// exhausted.
package pipeline

import (
	"context"

	"github.com/ternarybob/codescribe/internal/fallback"
	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/retry"
	"github.com/ternarybob/codescribe/internal/stats"
	"github.com/ternarybob/codescribe/internal/tokens"
	"github.com/ternarybob/codescribe/internal/validation"
)

// Pipeline wires C5/C6 around an ordered adapter chain (C4) and a schema
// validator (C2). One Pipeline instance is shared across every file in a
// capture run — it holds no per-call state.
type Pipeline struct {
	adapters []llm.Adapter
	retrier  *retry.Strategy
	stats    *stats.Recorder
}

// New builds a Pipeline over adapters, in fallback order.
func New(adapters []llm.Adapter, retrier *retry.Strategy, recorder *stats.Recorder) *Pipeline {
	return &Pipeline{adapters: adapters, stats: recorder, retrier: retrier}
}

// Result is what Run returns: either a validated value or a terminal error
// string suitable for storage in SourceRecord.SummaryError.
type Result struct {
	Value any
	Error string
}

// Run executes the state machine from spec.md §4.7 for one resource.
// resourceName is used only for logs/errors. schema and out follow
// validation.Validate's contract: out is populated on success.
func Run(ctx context.Context, p *Pipeline, resourceName, prompt string, schema validation.Schema, opts llm.CompletionOptions, newOut func() any) Result {
	adapterIndex := 0
	currentPrompt := prompt
	exceededOnCurrentAdapter := false

	for {
		adapter := p.adapters[adapterIndex]
		result := p.retrier.Call(ctx, adapter, currentPrompt, opts)

		if result.Status == llm.StatusCompleted {
			out := newOut()
			if err := validation.Validate(result.Generated, schema, out); err != nil {
				result = llm.InvocationResult{Status: llm.StatusInvalid, Err: err}
			} else {
				p.stats.Incr(stats.KeySuccess)
				return Result{Value: out}
			}
		}

		action := fallback.Decide(result, adapterIndex, len(p.adapters), exceededOnCurrentAdapter)

		switch action {
		case fallback.ActionCropPrompt:
			ratio := tokens.CropRatio(result.TokenCounts.PromptTokens, result.TokenCounts.ModelLimit)
			cropped := tokens.CropContent(currentPrompt, ratio)
			p.stats.Incr(stats.KeyCrop)
			if cropped == "" {
				p.stats.Incr(stats.KeyFailure)
				return Result{Error: terminalError(resourceName, result)}
			}
			currentPrompt = cropped
			exceededOnCurrentAdapter = true

		case fallback.ActionSwitchAdapter:
			adapterIndex++
			p.stats.Incr(stats.KeySwitch)
			exceededOnCurrentAdapter = false
			currentPrompt = prompt
			if adapterIndex == len(p.adapters) {
				p.stats.Incr(stats.KeyFailure)
				return Result{Error: terminalError(resourceName, result)}
			}

		case fallback.ActionTerminate:
			p.stats.Incr(stats.KeyFailure)
			return Result{Error: terminalError(resourceName, result)}
		}
	}
}

func terminalError(resourceName string, result llm.InvocationResult) string {
	msg := string(result.Status)
	if result.Err != nil {
		msg += ": " + result.Err.Error()
	}
	return resourceName + ": " + msg
}
