package pipeline

import (
	"context"
	"time"
)

// Pacer pauses between category fetches. Injectable so tests run
// without wall-clock delay.
type Pacer interface {
	Pause(ctx context.Context)
}

// FixedDelayPacer is the self-imposed rate limit against the API: a
// constant pause after every category attempt, success or failure.
type FixedDelayPacer struct {
	Delay time.Duration
}

func (p FixedDelayPacer) Pause(ctx context.Context) {
	if p.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.Delay):
	}
}

// NopPacer skips pacing entirely.
type NopPacer struct{}

func (NopPacer) Pause(context.Context) {}
