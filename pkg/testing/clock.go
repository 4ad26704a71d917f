package testing

import (
	"time"

	"github.com/go-drift/stage/pkg/animation"
)

// FakeClock is a manually advanced clock for deterministic animation
// tests. It implements animation.Clock.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a clock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Unix(0, 0)}
}

// Now returns the clock's current time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var _ animation.Clock = (*FakeClock)(nil)
