package utils

import (
	"sync"
	"time"
)

// TestClock is a manually advanced clock for tests.
// Now returns a monotonic reading, Wall the matching calendar time.
type TestClock struct {
	mu      sync.Mutex
	elapsed time.Duration
	wall    time.Time
}

func (c *TestClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *TestClock) Wall() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wall.Add(c.elapsed)
}

// Advance moves both readings forward by d.
func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.elapsed += d
	c.mu.Unlock()
}

// NewTestClock starts at monotonic zero and at 2025-11-22 09:00:00 local
// wall time.
func NewTestClock() *TestClock {
	return &TestClock{wall: time.Date(2025, time.November, 22, 9, 0, 0, 0, time.Local)}
}
