package client

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between consecutive API requests.
// The provider allows roughly 10 requests per second, so the default interval
// of 110ms keeps a small safety margin.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	// Injectable for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRateLimiter creates a rate limiter with the given minimum interval
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Wait blocks until at least the configured interval has elapsed since the
// previous permit. The first call never blocks. Safe for concurrent use.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.last.IsZero() {
		if remaining := r.interval - r.now().Sub(r.last); remaining > 0 {
			if err := r.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	r.last = r.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
