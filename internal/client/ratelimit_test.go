package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives a RateLimiter deterministically and records sleeps
type fakeClock struct {
	now    time.Time
	slept  []time.Duration
	sleeps int
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	f.slept = append(f.slept, d)
	f.sleeps++
	f.now = f.now.Add(d)
	return nil
}

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestLimiter(interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := newFakeClock()
	rl := NewRateLimiter(interval)
	rl.now = clock.Now
	rl.sleep = clock.Sleep
	return rl, clock
}

func TestRateLimiterFirstCallDoesNotBlock(t *testing.T) {
	rl, clock := newTestLimiter(110 * time.Millisecond)

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, 0, clock.sleeps)
}

func TestRateLimiterEnforcesInterval(t *testing.T) {
	rl, clock := newTestLimiter(110 * time.Millisecond)

	require.NoError(t, rl.Wait(context.Background()))

	// 40ms later the limiter owes the remaining 70ms.
	clock.Advance(40 * time.Millisecond)
	require.NoError(t, rl.Wait(context.Background()))

	require.Equal(t, 1, clock.sleeps)
	assert.Equal(t, 70*time.Millisecond, clock.slept[0])
}

func TestRateLimiterNoSleepAfterInterval(t *testing.T) {
	rl, clock := newTestLimiter(110 * time.Millisecond)

	require.NoError(t, rl.Wait(context.Background()))

	clock.Advance(200 * time.Millisecond)
	require.NoError(t, rl.Wait(context.Background()))

	assert.Equal(t, 0, clock.sleeps)
}

func TestRateLimiterCancelledContext(t *testing.T) {
	rl := NewRateLimiter(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, rl.Wait(ctx))

	cancel()
	err := rl.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
