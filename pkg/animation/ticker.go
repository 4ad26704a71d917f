// Package animation provides the timing primitives that drive window
// transition animations.
//
// A [Controller] progresses a value from 0.0 to 1.0 over a fixed
// duration and reports its lifecycle through a small status machine.
// Controllers are driven by [Ticker]s, which are advanced once per
// frame by the embedding compositor's loop via [StepTickers]. Tests
// inject a fake [Clock] via [SetClock] and pump frames manually.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [Controller].
// Most code should use Controller directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called.
// Tickers are driven by the compositor's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame by the owning loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
