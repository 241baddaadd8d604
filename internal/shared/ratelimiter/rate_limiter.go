// Package ratelimiter throttles outbound calls to external APIs.
package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// Limiter caps the frequency of an operation, blocking the caller
// when the budget for the current interval is spent.
type Limiter interface {
	WaitIfNeeded()
}

// RateLimiter is a fixed-window limiter: up to limit calls per
// interval, then the caller sleeps until the window resets. Safe for
// concurrent use.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter allowing limit calls per
// interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded consumes one call from the current window, sleeping
// through the rest of the window when the budget is exhausted.
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Warn("rate limit reached, waiting", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
