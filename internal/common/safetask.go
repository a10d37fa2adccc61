package common

import (
	"fmt"
	"runtime"

	"github.com/ternarybob/arbor"
)

// RunSafely executes fn and recovers any panic, logging it instead of
// crashing the process. The Capture Orchestrator's worker pool uses this for
// every per-file task so one malformed file can never take down a run
// partway through (spec.md §4.9: "partial failures never stop the pool").
func RunSafely(logger arbor.ILogger, taskName string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			logger.Error().
				Str("task", taskName).
				Str("panic", fmt.Sprintf("%v", r)).
				Str("stack", string(buf[:n])).
				Msg("Recovered from panic in capture task")
		}
	}()

	fn()
}
