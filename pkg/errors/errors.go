// Package errors provides structured error handling for the Stage library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindNotFound indicates a lookup for an unknown display or container.
	KindNotFound
	// KindState indicates an operation invoked in an invalid lifecycle state.
	KindState
	// KindConfig indicates a scene or configuration parsing failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindState:
		return "state"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StageError represents a structured error in the Stage library.
type StageError struct {
	// Op is the operation that failed (e.g., "wm.StackController.Reparent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NotFound creates a KindNotFound error for the given operation.
func NotFound(op, format string, args ...any) *StageError {
	return &StageError{
		Op:        op,
		Kind:      KindNotFound,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// State creates a KindState error for the given operation.
func State(op, format string, args ...any) *StageError {
	return &StageError{
		Op:        op,
		Kind:      KindState,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Config wraps err as a KindConfig error for the given operation.
func Config(op string, err error) *StageError {
	return &StageError{
		Op:        op,
		Kind:      KindConfig,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// IsNotFound reports whether err is (or wraps) a KindNotFound error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsState reports whether err is (or wraps) a KindState error.
func IsState(err error) bool {
	return isKind(err, KindState)
}

// IsConfig reports whether err is (or wraps) a KindConfig error.
func IsConfig(err error) bool {
	return isKind(err, KindConfig)
}

func isKind(err error, kind ErrorKind) bool {
	for err != nil {
		if stageErr, ok := err.(*StageError); ok && stageErr.Kind == kind {
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scene.Replay").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Stage library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StageError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
