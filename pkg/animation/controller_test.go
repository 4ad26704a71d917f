package animation

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func withFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	clk := &fakeClock{now: time.Unix(0, 0)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestControllerRunsToCompletion(t *testing.T) {
	clk := withFakeClock(t)
	ctrl := NewController(100 * time.Millisecond)
	defer ctrl.Dispose()

	var statuses []Status
	ctrl.AddStatusListener(func(s Status) { statuses = append(statuses, s) })

	ctrl.Start()
	if !ctrl.IsAnimating() {
		t.Fatalf("expected controller running after Start, got %v", ctrl.Status())
	}

	clk.now = clk.now.Add(50 * time.Millisecond)
	StepTickers()
	if ctrl.Value < 0.49 || ctrl.Value > 0.51 {
		t.Fatalf("expected value near 0.5 at half duration, got %f", ctrl.Value)
	}
	if !ctrl.IsAnimating() {
		t.Fatalf("expected controller still running at half duration")
	}

	clk.now = clk.now.Add(60 * time.Millisecond)
	StepTickers()
	if !ctrl.IsCompleted() {
		t.Fatalf("expected controller completed, got %v", ctrl.Status())
	}
	if ctrl.Value != 1 {
		t.Fatalf("expected value 1 at completion, got %f", ctrl.Value)
	}
	if len(statuses) != 2 || statuses[0] != StatusRunning || statuses[1] != StatusCompleted {
		t.Fatalf("expected status sequence [running completed], got %v", statuses)
	}
	if HasActiveTickers() {
		t.Fatalf("expected no active tickers after completion")
	}
}

func TestControllerStopReturnsToIdle(t *testing.T) {
	clk := withFakeClock(t)
	ctrl := NewController(100 * time.Millisecond)
	defer ctrl.Dispose()

	ctrl.Start()
	clk.now = clk.now.Add(30 * time.Millisecond)
	StepTickers()
	ctrl.Stop()

	if ctrl.Status() != StatusIdle {
		t.Fatalf("expected idle after Stop, got %v", ctrl.Status())
	}
	if HasActiveTickers() {
		t.Fatalf("expected ticker released after Stop")
	}

	// A further frame must not move the value.
	value := ctrl.Value
	clk.now = clk.now.Add(30 * time.Millisecond)
	StepTickers()
	if ctrl.Value != value {
		t.Fatalf("expected value frozen after Stop, got %f", ctrl.Value)
	}
}

func TestControllerZeroDurationCompletesOnFirstFrame(t *testing.T) {
	withFakeClock(t)
	ctrl := NewController(0)
	defer ctrl.Dispose()

	ctrl.Start()
	StepTickers()
	if !ctrl.IsCompleted() {
		t.Fatalf("expected zero-duration controller to complete on first frame, got %v", ctrl.Status())
	}
}

func TestControllerResetRewindsValue(t *testing.T) {
	clk := withFakeClock(t)
	ctrl := NewController(100 * time.Millisecond)
	defer ctrl.Dispose()

	ctrl.Start()
	clk.now = clk.now.Add(200 * time.Millisecond)
	StepTickers()
	if !ctrl.IsCompleted() {
		t.Fatalf("expected completion before reset")
	}

	ctrl.Reset()
	if ctrl.Status() != StatusIdle || ctrl.Value != 0 {
		t.Fatalf("expected idle at zero after Reset, got %v value %f", ctrl.Status(), ctrl.Value)
	}
}

func TestListenerUnsubscribe(t *testing.T) {
	clk := withFakeClock(t)
	ctrl := NewController(100 * time.Millisecond)
	defer ctrl.Dispose()

	var calls int
	unsubscribe := ctrl.AddListener(func() { calls++ })

	ctrl.Start()
	clk.now = clk.now.Add(10 * time.Millisecond)
	StepTickers()
	if calls != 1 {
		t.Fatalf("expected one value notification, got %d", calls)
	}

	unsubscribe()
	clk.now = clk.now.Add(10 * time.Millisecond)
	StepTickers()
	if calls != 1 {
		t.Fatalf("expected no notifications after unsubscribe, got %d", calls)
	}
}
