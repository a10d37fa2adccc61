package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/codescribe/internal/llm"
)

func TestDecide_ExceededWithTokenCountsCropsFirst(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusExceeded, TokenCounts: &llm.TokenCounts{PromptTokens: 9000, ModelLimit: 8192}}
	assert.Equal(t, ActionCropPrompt, Decide(result, 0, 2, false))
}

func TestDecide_ExceededAfterRepeatedCropSwitches(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusExceeded, TokenCounts: &llm.TokenCounts{PromptTokens: 9000}}
	assert.Equal(t, ActionSwitchAdapter, Decide(result, 0, 2, true))
}

func TestDecide_ExceededOnLastAdapterTerminates(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusExceeded, TokenCounts: &llm.TokenCounts{PromptTokens: 9000}}
	assert.Equal(t, ActionTerminate, Decide(result, 1, 2, true))
}

func TestDecide_OverloadedExhaustedSwitches(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusOverloaded}
	assert.Equal(t, ActionSwitchAdapter, Decide(result, 0, 2, false))
}

func TestDecide_OverloadedOnLastAdapterTerminates(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusOverloaded}
	assert.Equal(t, ActionTerminate, Decide(result, 1, 2, false))
}

func TestDecide_InvalidExhaustedSwitches(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusInvalid}
	assert.Equal(t, ActionSwitchAdapter, Decide(result, 0, 3, false))
}

func TestDecide_ErroredAlwaysTerminates(t *testing.T) {
	result := llm.InvocationResult{Status: llm.StatusErrored}
	assert.Equal(t, ActionTerminate, Decide(result, 0, 3, false))
	assert.Equal(t, ActionTerminate, Decide(result, 2, 3, false))
}
