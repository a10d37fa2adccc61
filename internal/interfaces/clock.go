package interfaces

import (
	"context"
	"time"
)

// Clock abstracts time so the retry strategy's backoff delays are
// deterministic and cancellation-aware under test.
type Clock interface {
	Now() time.Time

	// Sleep blocks for d or until ctx is done, whichever comes first. It
	// returns ctx.Err() on cancellation, nil otherwise.
	Sleep(ctx context.Context, d time.Duration) error
}
