// Package errors provides structured error handling for the motion library.
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
	// KindCallback indicates a failure inside a caller-supplied
	// lifecycle callback.
	KindCallback
	// KindPreset indicates a preset file parsing or validation failure.
	KindPreset
	// KindPlot indicates a curve rendering failure.
	KindPlot
)

func (k ErrorKind) String() string {
	switch k {
	case KindCallback:
		return "callback"
	case KindPreset:
		return "preset"
	case KindPlot:
		return "plot"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion library.
type MotionError struct {
	// Op is the operation that failed (e.g., "preset.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a caller-supplied callback.
//
// The animation engine recovers callback panics so a misbehaving OnUpdate
// cannot leave an animation half-transitioned; the recovered value is
// reported through the global handler and surfaces as the animation's
// terminal error.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.OnUpdate").
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
