package llm

import (
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/codescribe/internal/common"
	"github.com/ternarybob/codescribe/internal/tokens"
)

func newTestClaudeAdapter(contextWindow int) *ClaudeAdapter {
	return &ClaudeAdapter{config: &common.ClaudeConfig{ContextWindowTokens: contextWindow}}
}

func TestClaudeClassifyError_RateLimitIsOverloaded(t *testing.T) {
	a := newTestClaudeAdapter(200000)
	err := &anthropic.Error{StatusCode: 429}

	result := a.classifyError(err, "prompt")

	assert.Equal(t, StatusOverloaded, result.Status)
	assert.Nil(t, result.TokenCounts)
}

func TestClaudeClassifyError_OverloadedStatusIsOverloaded(t *testing.T) {
	a := newTestClaudeAdapter(200000)
	err := &anthropic.Error{StatusCode: 529}

	result := a.classifyError(err, "prompt")

	assert.Equal(t, StatusOverloaded, result.Status)
}

func TestClaudeClassifyError_PayloadTooLargeIsExceededWithTokenCounts(t *testing.T) {
	a := newTestClaudeAdapter(200000)
	err := &anthropic.Error{StatusCode: 413}
	prompt := "a very long prompt that exceeds the context window"

	result := a.classifyError(err, prompt)

	require.Equal(t, StatusExceeded, result.Status)
	require.NotNil(t, result.TokenCounts)
	assert.Equal(t, tokens.Estimate(prompt), result.TokenCounts.PromptTokens)
	assert.Equal(t, 200000, result.TokenCounts.ModelLimit)
	assert.NotZero(t, result.TokenCounts.PromptTokens)
}

func TestClaudeClassifyError_DeadlineExceededIsErrored(t *testing.T) {
	a := newTestClaudeAdapter(200000)

	result := a.classifyError(errors.New("context deadline exceeded"), "prompt")

	assert.Equal(t, StatusErrored, result.Status)
}

func TestClaudeClassifyError_UnrecognizedStatusCodeIsErrored(t *testing.T) {
	a := newTestClaudeAdapter(200000)
	err := &anthropic.Error{StatusCode: 500}

	result := a.classifyError(err, "prompt")

	assert.Equal(t, StatusErrored, result.Status)
}
