// Package retry implements the Retry Strategy (C5): wrapping a single
// adapter call with backoff-and-jitter retries on transient outcomes.
package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/ternarybob/codescribe/internal/interfaces"
	"github.com/ternarybob/codescribe/internal/llm"
	"github.com/ternarybob/codescribe/internal/stats"
)

// Config mirrors spec.md §3's RetryConfig.
type Config struct {
	MaxAttempts       int
	MinRetryDelayMs   int
	BackoffMultiplier float64
	JitterFraction    float64
}

// Strategy wraps adapter.Complete calls with retry-on-OVERLOADED/INVALID
// semantics, honoring cancellation during backoff sleeps.
type Strategy struct {
	config  Config
	clock   interfaces.Clock
	stats   *stats.Recorder
	randFn  func() float64 // seam for deterministic tests
}

// New builds a Strategy. A zero Config.MaxAttempts is treated as 5, matching
// spec.md §4.5's stated default.
func New(config Config, clock interfaces.Clock, recorder *stats.Recorder) *Strategy {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	return &Strategy{config: config, clock: clock, stats: recorder, randFn: rand.Float64}
}

// Call invokes adapter.Complete, retrying on OVERLOADED or INVALID up to
// MaxAttempts times with exponential backoff and jitter. Any other status,
// or a context cancellation during a backoff sleep, returns immediately.
func (s *Strategy) Call(ctx context.Context, adapter llm.Adapter, prompt string, opts llm.CompletionOptions) llm.InvocationResult {
	var result llm.InvocationResult

	for attempt := 0; attempt < s.config.MaxAttempts; attempt++ {
		result = adapter.Complete(ctx, prompt, opts)

		if result.Status != llm.StatusOverloaded && result.Status != llm.StatusInvalid {
			return result
		}

		if attempt == s.config.MaxAttempts-1 {
			return result
		}

		if result.Status == llm.StatusOverloaded {
			s.stats.Incr(stats.KeyOverloadRetry)
		} else {
			s.stats.Incr(stats.KeyHopefulRetry)
		}

		delay := s.backoffDelay(attempt)
		if err := s.clock.Sleep(ctx, delay); err != nil {
			return llm.InvocationResult{Status: llm.StatusErrored, Err: err}
		}
	}

	return result
}

// backoffDelay implements spec.md §4.5's formula:
// delay_n = minRetryDelayMs * backoffMultiplier^n * (1 + U[-jitter, +jitter]).
func (s *Strategy) backoffDelay(attempt int) time.Duration {
	base := float64(s.config.MinRetryDelayMs) * math.Pow(s.config.BackoffMultiplier, float64(attempt))
	jitter := 1 + (s.randFn()*2-1)*s.config.JitterFraction
	return time.Duration(base * jitter * float64(time.Millisecond))
}
