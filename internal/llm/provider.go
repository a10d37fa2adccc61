// Package llm defines the LLM Provider Adapter contract (spec.md §4.4) and
// the Claude/Gemini adapters bound to it. Adapters never throw for expected
// failure modes — they classify every outcome into a Status the retry and
// fallback strategies can act on without inspecting provider-specific errors.
package llm

import "context"

// Status is the outcome of a single adapter.Complete call.
type Status string

const (
	StatusCompleted  Status = "COMPLETED"
	StatusOverloaded Status = "OVERLOADED"
	StatusExceeded   Status = "EXCEEDED"
	StatusInvalid    Status = "INVALID"
	StatusErrored    Status = "ERRORED"
)

// Quality is the model tier a bound adapter serves.
type Quality string

const (
	QualityPrimary   Quality = "PRIMARY"
	QualitySecondary Quality = "SECONDARY"
)

// TokenCounts is populated on EXCEEDED (mandatory) and, when the provider
// reports it, on other statuses too. ModelLimit is the provider's context
// window for the bound model.
type TokenCounts struct {
	PromptTokens     int
	CompletionTokens int
	ModelLimit       int
}

// InvocationResult is the transient LLMInvocationResult from spec.md §3.
type InvocationResult struct {
	Status      Status
	Generated   string
	Err         error
	TokenCounts *TokenCounts
}

// CompletionOptions carries per-call generation parameters.
type CompletionOptions struct {
	Temperature       float32
	MaxTokens         int
	SystemInstruction string
}

// Adapter is the uniform call surface for one bound (family, quality) pair.
type Adapter interface {
	// Complete invokes the bound model. It never returns a Go error for
	// expected failure modes (rate limiting, oversize, schema mismatch) —
	// those are classified into InvocationResult.Status instead.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) InvocationResult

	// Embed produces a single embedding vector. Empty or nil content, or a
	// failed call, returns (nil, nil) rather than an error, matching
	// spec.md §4.4 ("empty or null content returns null").
	Embed(ctx context.Context, text string) ([]float32, error)

	// AvailableQualities reports which tiers this adapter can serve.
	AvailableQualities() []Quality

	// NeedsForcedShutdown is an escape hatch for adapters whose underlying
	// client cannot be closed cleanly (spec.md §4.4).
	NeedsForcedShutdown() bool

	// Name identifies the adapter for logs and resource-name strings.
	Name() string

	// Close releases adapter resources.
	Close() error
}
