// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called or a wait completes.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Waits never block:
// After delivers immediately and Sleep returns at once, with the waited
// duration recorded and the fake's now moved forward by it, as if the
// wait had genuinely elapsed in zero wall time. Now-based deadline
// logic (token expiry, backoff arithmetic) therefore observes the same
// timeline a real clock would, minus the waiting.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	waited  []time.Duration
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// After records the wait, advances the fake time by d, and returns a
// channel that already holds the new current time.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d > 0 {
		c.current = c.current.Add(d)
		c.waited = append(c.waited, d)
	}
	channel := make(chan time.Time, 1)
	channel <- c.current
	return channel
}

// Sleep records the wait and advances the fake time by d, returning
// immediately.
func (c *FakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d > 0 {
		c.current = c.current.Add(d)
		c.waited = append(c.waited, d)
	}
}

// Advance moves the fake time forward without recording a wait. Use it
// to age tokens or cross deadlines between operations.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Waited returns the durations passed to After and Sleep, in call
// order. Asserting on this is how tests verify retry delays.
func (c *FakeClock) Waited() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.waited))
	copy(out, c.waited)
	return out
}
