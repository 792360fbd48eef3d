package frameloop

import "time"

// MaxDelta caps a single measured step so a stalled window (drag, sleep)
// does not fast-forward the scenes. Loop time then trails wall-clock time
// by whatever the stall exceeded.
const MaxDelta = 250 * time.Millisecond

// Clock turns successive host ticks into deltas.
type Clock struct {
	Now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

// Tick returns the time since the previous Tick. The first call returns 0.
func (c *Clock) Tick() time.Duration {
	now := c.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if d > MaxDelta {
		return MaxDelta
	}
	return d
}
