package core

import "time"

// Clock is a monotonic time source. `Now` returns the time elapsed
// since an arbitrary, fixed origin and never goes backwards.
// All duration math in the engine uses a Clock.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	origin time.Time
}

// Now returns the monotonic time since the clock was created.
// `time.Since` uses the monotonic reading carried by origin, so wall
// clock adjustments do not affect the result.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}
