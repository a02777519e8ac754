package debounce

import (
	"time"
)

// Instant is a reading of a Clock in nanoseconds. Only the difference between
// two readings of the same Clock is meaningful.
type Instant int64

// Clock produces monotonically non-decreasing instants.
type Clock interface {
	Now() Instant
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() Instant

// Now calls f.
func (f ClockFunc) Now() Instant {
	return f()
}

var processStart = time.Now()

type systemClock struct{}

func (systemClock) Now() Instant {
	// time.Since uses the monotonic clock reading, so wall clock adjustments
	// do not move it backwards.
	return Instant(time.Since(processStart))
}

// SystemClock returns the default Clock, backed by the runtime's monotonic
// clock.
func SystemClock() Clock {
	return systemClock{}
}

// ManualClock is a Clock which only moves when told to. It is intended for
// deterministic tests of code using Action and Identity.
//
// ManualClock is not safe for concurrent use.
type ManualClock struct {
	now Instant
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start Instant) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() Instant {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored, as the
// clock must never go backwards.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += Instant(d)
	}
}

// Set moves the clock to i, if i is not before the current reading.
func (c *ManualClock) Set(i Instant) {
	if i > c.now {
		c.now = i
	}
}
