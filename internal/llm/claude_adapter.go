package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/tokens"
)

// ClaudeAdapter binds the Adapter contract to Anthropic's Claude models. It
// is typically configured as the PRIMARY quality in the adapter chain.
type ClaudeAdapter struct {
	config  *common.ClaudeConfig
	logger  arbor.ILogger
	client  anthropic.Client
	limiter *rate.Limiter
}

// NewClaudeAdapter constructs a Claude adapter from configuration. requestsPerSecond
// bounds outbound calls so a fast-failing upstream can't be hammered during
// retry storms (DOMAIN STACK: golang.org/x/time).
func NewClaudeAdapter(config *common.ClaudeConfig, requestsPerSecond float64, logger arbor.ILogger) *ClaudeAdapter {
	return &ClaudeAdapter{
		config:  config,
		logger:  logger,
		client:  anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (a *ClaudeAdapter) Name() string { return "claude:" + a.config.Model }

func (a *ClaudeAdapter) AvailableQualities() []Quality { return []Quality{QualityPrimary} }

func (a *ClaudeAdapter) NeedsForcedShutdown() bool { return false }

func (a *ClaudeAdapter) Close() error { return nil }

func (a *ClaudeAdapter) Complete(ctx context.Context, prompt string, opts CompletionOptions) InvocationResult {
	if err := a.limiter.Wait(ctx); err != nil {
		return InvocationResult{Status: StatusErrored, Err: err}
	}

	timeout := time.Duration(a.config.TimeoutSecs) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = a.config.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(opts.Temperature))
	}
	if opts.SystemInstruction != "" {
		params.System = []anthropic.TextBlockParam{{Text: opts.SystemInstruction}}
	}

	resp, err := a.client.Messages.New(callCtx, params)
	if err != nil {
		return a.classifyError(err, prompt)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return InvocationResult{Status: StatusInvalid, Err: errors.New("empty response content")}
	}

	return InvocationResult{
		Status:    StatusCompleted,
		Generated: text.String(),
		TokenCounts: &TokenCounts{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
		},
	}
}

// Embed reports no support: Anthropic has no embedding endpoint. Adapters
// never throw for an unsupported-but-expected operation, matching the
// null-on-empty-content contract from spec.md §4.4.
func (a *ClaudeAdapter) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, nil
}

// classifyError maps Anthropic API errors into the Status taxonomy from
// spec.md §4.4. Overload/rate-limit responses become OVERLOADED so the retry
// strategy engages. A 413 is EXCEEDED with an estimated PromptTokens (the API
// doesn't echo usage on a rejected request) against the model's actual
// context window, not the completion budget — that's what lets
// tokens.CropRatio compute a real crop instead of always flooring at its
// minimum ratio.
// Everything else is ERRORED.
func (a *ClaudeAdapter) classifyError(err error, prompt string) InvocationResult {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 529:
			return InvocationResult{Status: StatusOverloaded, Err: err}
		case 413:
			return InvocationResult{
				Status: StatusExceeded,
				Err:    err,
				TokenCounts: &TokenCounts{
					PromptTokens: tokens.Estimate(prompt),
					ModelLimit:   a.config.ContextWindowTokens,
				},
			}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return InvocationResult{Status: StatusErrored, Err: err}
	}
	return InvocationResult{Status: StatusErrored, Err: err}
}
