package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a minimum interval between requests using a token
// bucket with a burst of one: the first wait returns immediately, every
// later wait blocks until the interval has elapsed since the previous
// request. One Limiter is shared across all seed invocations of a
// crawler, so the interval holds globally for the target server.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter with the given inter-request interval.
// A non-positive interval never blocks.
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the interval allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
