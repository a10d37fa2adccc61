package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/retry"
	"github.com/ternarybob/codescribe/internal/stats"
	"github.com/ternarybob/codescribe/internal/validation"
)

type noopClock struct{}

func (noopClock) Now() time.Time                                       { return time.Time{} }
func (noopClock) Sleep(ctx context.Context, d time.Duration) error { return ctx.Err() }

type scriptedAdapter struct {
	name    string
	results []llm.InvocationResult
	calls   int
}

func (a *scriptedAdapter) Complete(ctx context.Context, prompt string, opts llm.CompletionOptions) llm.InvocationResult {
	idx := a.calls
	if idx >= len(a.results) {
		idx = len(a.results) - 1
	}
	a.calls++
	return a.results[idx]
}
func (a *scriptedAdapter) Embed(ctx context.Context, text string) ([]float32, error) { return nil, nil }
func (a *scriptedAdapter) AvailableQualities() []llm.Quality                         { return []llm.Quality{llm.QualityPrimary} }
func (a *scriptedAdapter) NeedsForcedShutdown() bool                                 { return false }
func (a *scriptedAdapter) Name() string                                             { return a.name }
func (a *scriptedAdapter) Close() error                                             { return nil }

type target struct {
	Purpose string `json:"purpose"`
}

func newTestPipeline(clock interfaces.Clock, adapters ...*scriptedAdapter) (*Pipeline, *stats.Recorder) {
	recorder := stats.New(false)
	llmAdapters := make([]llm.Adapter, len(adapters))
	for i, a := range adapters {
		llmAdapters[i] = a
	}
	retrier := retry.New(retry.Config{MaxAttempts: 3, MinRetryDelayMs: 1, BackoffMultiplier: 1, JitterFraction: 0}, clock, recorder)
	return New(llmAdapters, retrier, recorder), recorder
}

// S1: first adapter succeeds on the first attempt.
func TestRun_FirstAdapterSucceedsImmediately(t *testing.T) {
	adapter := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{
		{Status: llm.StatusCompleted, Generated: `{"purpose": "parses config"}`},
	}}
	p, recorder := newTestPipeline(noopClock{}, adapter)

	result := Run(context.Background(), p, "file.go", "prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.Empty(t, result.Error)
	out := result.Value.(*target)
	assert.Equal(t, "parses config", out.Purpose)
	assert.EqualValues(t, 1, recorder.Snapshot()[stats.KeySuccess].Count)
}

// S2: a schema-invalid response is treated as INVALID with no further
// retries on that adapter; on the only adapter that terminates the run.
func TestRun_SchemaInvalidTerminatesWithoutRetryOnLastAdapter(t *testing.T) {
	adapter := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{
		{Status: llm.StatusCompleted, Generated: "not json at all"},
		{Status: llm.StatusCompleted, Generated: `{"purpose": "ok now"}`},
	}}
	p, recorder := newTestPipeline(noopClock{}, adapter)

	result := Run(context.Background(), p, "file.go", "prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.NotEmpty(t, result.Error)
	assert.Nil(t, result.Value)
	assert.Equal(t, 1, adapter.calls)
	assert.EqualValues(t, 1, recorder.Snapshot()[stats.KeyFailure].Count)
}

// S3: EXCEEDED with token counts crops the prompt and retries on the same adapter.
func TestRun_ExceededCropsPromptThenSucceeds(t *testing.T) {
	adapter := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{
		{Status: llm.StatusExceeded, TokenCounts: &llm.TokenCounts{PromptTokens: 100000, ModelLimit: 8192}},
		{Status: llm.StatusCompleted, Generated: `{"purpose": "fits now"}`},
	}}
	p, recorder := newTestPipeline(noopClock{}, adapter)

	result := Run(context.Background(), p, "big.sql", "x very long prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.Empty(t, result.Error)
	assert.Equal(t, "fits now", result.Value.(*target).Purpose)
	assert.EqualValues(t, 1, recorder.Snapshot()[stats.KeyCrop].Count)
}

// S4: overload exhausts retries on the primary adapter and switches to the
// secondary, which then succeeds.
func TestRun_OverloadSwitchesAdapterThenSucceeds(t *testing.T) {
	primary := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{
		{Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded},
	}}
	secondary := &scriptedAdapter{name: "secondary", results: []llm.InvocationResult{
		{Status: llm.StatusCompleted, Generated: `{"purpose": "secondary handled it"}`},
	}}
	p, recorder := newTestPipeline(noopClock{}, primary, secondary)

	result := Run(context.Background(), p, "file.py", "prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.Empty(t, result.Error)
	assert.Equal(t, "secondary handled it", result.Value.(*target).Purpose)
	assert.EqualValues(t, 1, recorder.Snapshot()[stats.KeySwitch].Count)
	assert.Equal(t, 1, secondary.calls)
}

// S5: every adapter overloaded to exhaustion terminates with a failure.
func TestRun_AllAdaptersExhaustedTerminates(t *testing.T) {
	primary := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{
		{Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded},
	}}
	secondary := &scriptedAdapter{name: "secondary", results: []llm.InvocationResult{
		{Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded}, {Status: llm.StatusOverloaded},
	}}
	p, recorder := newTestPipeline(noopClock{}, primary, secondary)

	result := Run(context.Background(), p, "file.rb", "prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.NotEmpty(t, result.Error)
	assert.Nil(t, result.Value)
	assert.EqualValues(t, 1, recorder.Snapshot()[stats.KeyFailure].Count)
}

// S6: an ERRORED result terminates immediately without trying the secondary.
func TestRun_ErroredTerminatesWithoutSwitching(t *testing.T) {
	primary := &scriptedAdapter{name: "primary", results: []llm.InvocationResult{{Status: llm.StatusErrored}}}
	secondary := &scriptedAdapter{name: "secondary", results: []llm.InvocationResult{{Status: llm.StatusCompleted, Generated: `{"purpose": "never reached"}`}}}
	p, _ := newTestPipeline(noopClock{}, primary, secondary)

	result := Run(context.Background(), p, "file.xml", "prompt", validation.Schema{RequiredFields: []string{"purpose"}}, llm.CompletionOptions{}, func() any { return &target{} })

	require.NotEmpty(t, result.Error)
	assert.Equal(t, 0, secondary.calls)
}
