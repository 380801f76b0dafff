package core

import "time"

// Clock is a monotonic millisecond-grade time source.
// Now returns the time elapsed since the clock was created.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the wall time elapsed since creation.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

// NewManualClock returns a manual clock set to zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
