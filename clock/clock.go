// Package clock measures elapsed frame time.
package clock

import "time"

// Clock produces the time elapsed between successive ticks. It reads the
// monotonic component of time.Now, so adjusting the wall clock never makes
// it run backwards.
//
// A Clock is not safe for concurrent use; the frame loop owns it.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// New returns a clock whose first Tick measures from now.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource returns a clock reading time from now. Tests use it to
// drive the clock deterministically.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick (or since the
// clock was created) and advances the marker. The result is never negative.
func (c *Clock) Tick() float64 {
	now := c.now()
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
