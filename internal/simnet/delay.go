package simnet

// Package simnet simulates network latency for mock-backed adapters.
// Waits are tied to the request context so an abandoned request stops
// paying for the simulated round trip.

import (
	"context"
	"time"
)

// Delay introduces configurable artificial latency.
// The zero value waits for the full base duration of each call.
type Delay struct {
	// Disabled skips all waiting (tests, benchmarks).
	Disabled bool

	// Scale multiplies the base duration of each wait. Zero means 1.0.
	Scale float64
}

// None is a Delay that never waits.
var None = Delay{Disabled: true}

// Wait blocks for the scaled base duration or until ctx is done.
// Returns the context error when canceled, nil otherwise.
func (d Delay) Wait(ctx context.Context, base time.Duration) error {
	if d.Disabled || base <= 0 {
		return ctx.Err()
	}

	scale := d.Scale
	if scale == 0 {
		scale = 1.0
	}

	t := time.NewTimer(time.Duration(float64(base) * scale))
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
