// Copyright 2026 The Arpeggio Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now, time.After, or time.Sleep directly. In production, Real()
// provides the standard library behavior. In tests, Fake() provides a
// deterministic clock whose waits return immediately while advancing
// the fake's notion of now.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Client struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	c := &Client{clock: clock.Real()}
//
// In tests:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	c := &Client{clock: fake}
//	// ... exercise code that sleeps or checks deadlines ...
//	fake.Advance(time.Hour)        // expire a token
//	waited := fake.Waited()        // assert on retry delays
//
// Token-expiry checks use Now; retry backoff uses After (select-able
// against a context) or Sleep. The fake satisfies both without any
// real elapsed time: every wait is recorded and "completes" at once,
// moving the fake's now forward by the waited duration.
package clock
