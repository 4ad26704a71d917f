package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of an animation.
//
// The status follows this state machine:
//
//	          Start()              elapsed >= Duration
//	StatusIdle ────────► StatusRunning ────────► StatusCompleted
//	                          │
//	                          │ Stop()
//	                          ▼
//	                      StatusIdle
//
// A completed controller stays completed; call Reset to reuse it.
type Status int

const (
	// StatusIdle means the animation has not started or was stopped.
	StatusIdle Status = iota
	// StatusRunning means the animation is progressing toward completion.
	StatusRunning
	// StatusCompleted means the animation ran to the end of its duration.
	StatusCompleted
)

// String returns a human-readable representation of the animation status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller drives an animation by producing values over time.
//
// The controller manages a Value that progresses from 0.0 to 1.0 over
// the specified Duration. Window transitions use it as the completion
// signal that gates deferred container removal: the tree only consults
// IsAnimating, never the value itself.
//
// Always call Dispose when done to stop the animation and release
// resources.
type Controller struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	status          Status
	ticker          *Ticker
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates an animation controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Value:           0,
		Duration:        duration,
		status:          StatusIdle,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Start begins progressing the value from 0.0 toward 1.0.
// Restarting a running controller restarts it from zero.
func (c *Controller) Start() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.Value = 0
	c.setStatus(StatusRunning)
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(elapsed)
	})
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = 1
		c.complete()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}
	c.Value = progress
	c.notifyListeners()

	if progress >= 1.0 {
		c.complete()
	}
}

func (c *Controller) complete() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.setStatus(StatusCompleted)
}

// Stop halts the animation at the current value and returns to idle.
// A completed controller is unaffected.
func (c *Controller) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.status == StatusRunning {
		c.setStatus(StatusIdle)
	}
}

// Reset stops the animation and rewinds the value to zero.
func (c *Controller) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(StatusIdle)
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusRunning
}

// IsCompleted returns true if the animation ran to completion.
func (c *Controller) IsCompleted() bool {
	return c.status == StatusCompleted
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cleans up resources used by the controller.
func (c *Controller) Dispose() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.listeners = nil
	c.statusListeners = nil
}
