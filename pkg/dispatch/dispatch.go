// Package dispatch marshals callbacks onto the serialization thread.
//
// All container tree mutations must run on one logical thread. External
// event sources (animation completion, display hot-plug) use Dispatch
// to hand their callbacks to whatever loop owns that thread.
package dispatch

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// Register sets the dispatch function used to schedule callbacks on the
// serialization thread. This should be called once by the embedding
// system during initialization.
func Register(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the serialization thread.
// Returns true if the callback was successfully scheduled, false if no
// dispatch function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
