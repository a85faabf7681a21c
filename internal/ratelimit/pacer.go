package ratelimit

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Pacer enforces a fixed pause before an outbound call. The enrichment loop
// issues one call at a time and waits the full delay in front of each one,
// which is what keeps the pipeline under public endpoint throughput caps.
// The clock is injectable so the delay policy can be tested without real
// wall-clock waits.
type Pacer struct {
	delay time.Duration
	clock clock.Clock
}

// New creates a Pacer backed by the real clock.
func New(delay time.Duration) *Pacer {
	return NewWithClock(delay, clock.New())
}

// NewWithClock creates a Pacer with an explicit clock (tests pass clock.NewMock()).
func NewWithClock(delay time.Duration, c clock.Clock) *Pacer {
	if c == nil {
		c = clock.New()
	}
	return &Pacer{delay: delay, clock: c}
}

// Delay returns the configured pause.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Wait blocks for the configured delay or until the context is cancelled.
// A nil pacer or non-positive delay only checks the context, so tests can
// run the pipeline without pacing.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.delay <= 0 {
		return ctx.Err()
	}

	t := p.clock.Timer(p.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
