// Package testing provides a harness for exercising the window
// container tree without a real compositor loop.
//
// The harness swaps the animation clock for a fake, captures dispatch
// callbacks in a queue, and offers factories mirroring how embedding
// systems create displays, stacks, and tasks.
package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/stage/pkg/animation"
	"github.com/go-drift/stage/pkg/dispatch"
	"github.com/go-drift/stage/pkg/wm"
)

// Harness drives the container tree deterministically in tests.
type Harness struct {
	// Root is the display registry under test.
	Root *wm.Root
	// Animator bridges animation controllers to container state.
	Animator *wm.Animator

	clock      *FakeClock
	prevClock  animation.Clock
	queue      []func()
	stackCount int
	taskCount  int
}

// NewHarness creates a harness with a fake clock and a recording
// dispatch hook. Call Cleanup when done, or use NewHarnessWithT.
func NewHarness() *Harness {
	h := &Harness{
		Root:  wm.NewRoot(),
		clock: NewFakeClock(),
	}
	h.Animator = wm.NewAnimator(h.Root)
	h.prevClock = animation.SetClock(h.clock)
	dispatch.Register(h.enqueue)
	return h
}

// NewHarnessWithT creates a harness that restores global state via
// t.Cleanup. This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the animation clock and detaches the dispatch hook.
// Must be called if not using NewHarnessWithT.
func (h *Harness) Cleanup() {
	animation.SetClock(h.prevClock)
	dispatch.Register(nil)
}

func (h *Harness) enqueue(fn func()) {
	h.queue = append(h.queue, fn)
}

// FlushDispatch runs every callback marshaled onto the serialization
// thread, including callbacks enqueued while flushing.
func (h *Harness) FlushDispatch() {
	for len(h.queue) > 0 {
		queue := h.queue
		h.queue = nil
		for _, fn := range queue {
			fn()
		}
	}
}

// Advance moves the fake clock forward by d and pumps one animation
// frame.
func (h *Harness) Advance(d time.Duration) {
	h.clock.Advance(d)
	animation.StepTickers()
}

// NewDisplay attaches a fresh display to the root.
func (h *Harness) NewDisplay() *wm.DisplayContent {
	return h.Root.NewDisplay()
}

// NewStackController creates a named stack on display bound to a fresh
// controller.
func (h *Harness) NewStackController(display *wm.DisplayContent) *wm.StackController {
	h.stackCount++
	return wm.NewStackController(h.Root, display, fmt.Sprintf("stack-%d", h.stackCount))
}

// NewTask creates a task on the stack bound to controller and returns
// the task's controller. Fails the test when the stack controller has
// been released.
func (h *Harness) NewTask(t *testing.T, controller *wm.StackController) *wm.TaskController {
	t.Helper()
	h.taskCount++
	taskController, err := controller.NewTask(fmt.Sprintf("task-%d", h.taskCount))
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	return taskController
}
