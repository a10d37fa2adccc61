// Package stats implements the Stats Recorder (C11): a process-wide counter
// bag over a closed key set, incremented by the retry strategy and the
// execution pipeline at their defined points.
package stats

import (
	"sync/atomic"

	"github.com/phuslu/log"
)

// Key identifies one of the closed set of countable events (spec.md §4.11).
type Key string

const (
	KeySuccess       Key = "SUCCESS"
	KeyFailure       Key = "FAILURE"
	KeySwitch        Key = "SWITCH"
	KeyOverloadRetry Key = "OVERLOAD_RETRY"
	KeyHopefulRetry  Key = "HOPEFUL_RETRY"
	KeyCrop          Key = "CROP"
)

// entry pairs a counter with its fixed description and one-character echo
// symbol.
type entry struct {
	description string
	symbol      string
	count       int64
}

// Snapshot is one counter's point-in-time value, keyed by Key in Recorder.Snapshot.
type Snapshot struct {
	Description string
	Symbol      string
	Count       int64
}

// Recorder is the process-wide counter bag. The zero value is not usable;
// construct with New.
type Recorder struct {
	echo    bool
	entries map[Key]*entry
}

// New builds a Recorder over the fixed key set. When echo is true, each
// increment also writes its symbol to the secondary log sink, matching
// spec.md §4.11's optional per-increment echo.
func New(echo bool) *Recorder {
	return &Recorder{
		echo: echo,
		entries: map[Key]*entry{
			KeySuccess:       {description: "file summarized successfully", symbol: "."},
			KeyFailure:       {description: "file summarization exhausted all adapters", symbol: "F"},
			KeySwitch:        {description: "fallback switched to next adapter", symbol: ">"},
			KeyOverloadRetry: {description: "retry after adapter overload", symbol: "o"},
			KeyHopefulRetry:  {description: "retry after schema-invalid response", symbol: "?"},
			KeyCrop:          {description: "prompt cropped to fit context window", symbol: "c"},
		},
	}
}

// Incr atomically increments the counter for key. Unknown keys are ignored —
// the set is closed by design, not extensible at runtime.
func (r *Recorder) Incr(key Key) {
	e, ok := r.entries[key]
	if !ok {
		return
	}
	atomic.AddInt64(&e.count, 1)

	if r.echo {
		log.Info().Msg(e.symbol)
	}
}

// Snapshot returns the current value of every counter.
func (r *Recorder) Snapshot() map[Key]Snapshot {
	out := make(map[Key]Snapshot, len(r.entries))
	for key, e := range r.entries {
		out[key] = Snapshot{
			Description: e.description,
			Symbol:      e.symbol,
			Count:       atomic.LoadInt64(&e.count),
		}
	}
	return out
}
