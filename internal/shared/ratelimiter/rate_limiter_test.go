package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_WithinBudget(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)

	start := time.Now()
	for i := 0; i < 3; i++ {
		rl.WaitIfNeeded()
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond, "calls within the budget must not block")
}

func TestRateLimiter_BlocksWhenExhausted(t *testing.T) {
	interval := 200 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded() // third call in the same window must wait
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond, "exhausted budget must sleep to the window edge")
}

func TestRateLimiter_WindowResets(t *testing.T) {
	interval := 100 * time.Millisecond
	rl := NewRateLimiter(1, interval)

	rl.WaitIfNeeded()
	time.Sleep(interval + 20*time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	assert.Less(t, time.Since(start), 50*time.Millisecond, "a fresh window must not block")
}
