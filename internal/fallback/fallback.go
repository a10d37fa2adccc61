// Package fallback implements the Fallback Strategy (C6): the deterministic
// decision table mapping a retry-exhausted result onto the pipeline's next
// move.
package fallback

import "github.com/ternarybob/codescribe/internal/llm"

// Action is the next move the execution pipeline should take.
type Action string

const (
	ActionCropPrompt       Action = "CROP_PROMPT"
	ActionSwitchAdapter    Action = "SWITCH_ADAPTER"
	ActionTerminate        Action = "TERMINATE"
)

// Decide implements the table from spec.md §4.6. adapterIndex is the index
// of the adapter that produced result; adapterCount is the total configured.
// repeatedExceeded signals that the current adapter has already produced an
// EXCEEDED result without recovering via crop.
func Decide(result llm.InvocationResult, adapterIndex, adapterCount int, repeatedExceeded bool) Action {
	isLastAdapter := adapterIndex == adapterCount-1

	switch result.Status {
	case llm.StatusExceeded:
		if result.TokenCounts != nil && !repeatedExceeded {
			return ActionCropPrompt
		}
		if isLastAdapter {
			return ActionTerminate
		}
		return ActionSwitchAdapter

	case llm.StatusOverloaded, llm.StatusInvalid:
		if isLastAdapter {
			return ActionTerminate
		}
		return ActionSwitchAdapter

	case llm.StatusErrored:
		return ActionTerminate

	default:
		// COMPLETED is handled upstream by the pipeline before Decide is
		// ever called; reaching here is a caller error, not a valid state.
		return ActionTerminate
	}
}
