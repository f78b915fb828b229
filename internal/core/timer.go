package core

import "time"

// DefaultTickInterval is the simulation step used when none is configured.
const DefaultTickInterval = 100 * time.Millisecond

// TickTimer turns per-frame elapsed time into discrete simulation ticks.
//
// The counter starts at the interval and counts down. Once it reaches zero the
// timer reports a tick and restarts from the full interval; any overshoot is
// discarded, so a long frame yields a single tick rather than a burst.
type TickTimer struct {
	interval  time.Duration
	remaining time.Duration
}

// NewTickTimer constructs a TickTimer firing every interval.
func NewTickTimer(interval time.Duration) *TickTimer {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickTimer{interval: interval, remaining: interval}
}

// Interval returns the configured tick spacing.
func (t *TickTimer) Interval() time.Duration { return t.interval }

// Remaining returns the time left until the next tick.
func (t *TickTimer) Remaining() time.Duration { return t.remaining }

// Reset restarts the countdown from the full interval.
func (t *TickTimer) Reset() { t.remaining = t.interval }

// Advance consumes delta and reports whether a tick boundary was crossed.
func (t *TickTimer) Advance(delta time.Duration) bool {
	if delta < 0 {
		delta = 0
	}
	t.remaining -= delta
	if t.remaining <= 0 {
		t.remaining = t.interval
		return true
	}
	return false
}

// FrameClock measures wall time between successive frames for frontends that
// are not handed a delta by their host loop.
type FrameClock struct {
	last time.Time
	now  func() time.Time
}

// NewFrameClock constructs a FrameClock reading time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Delta returns the time elapsed since the previous call. The first call
// returns zero.
func (c *FrameClock) Delta() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	return delta
}
