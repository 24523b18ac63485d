package core

import "math"

// Clock is the tick scheduler for a single game instance. One counter
// drives every periodic behavior: an action firing `rate` times per
// second runs on the ticks where Every(rate) is true. Changing a rate
// changes the divisor; no separate timers exist.
type Clock struct {
	TPS  int    // Ticks per second (simulation rate, default 60)
	Tick uint64 // Monotonically increasing tick counter
}

// NewClock creates a clock at tick zero.
func NewClock(tps int) Clock {
	if tps <= 0 {
		tps = 60
	}
	return Clock{TPS: tps}
}

// Advance increments the tick counter by one frame.
func (c *Clock) Advance() {
	c.Tick++
}

// Every reports whether an action with the given per-second rate
// should fire on the current tick. A non-positive rate never fires.
func (c Clock) Every(rate float64) bool {
	if rate <= 0 {
		return false
	}
	div := int(math.Round(float64(c.TPS) / rate))
	if div < 1 {
		div = 1
	}
	return c.Tick%uint64(div) == 0
}

// Seconds returns the whole seconds elapsed since tick zero.
func (c Clock) Seconds() int {
	return int(c.Tick) / c.TPS
}
