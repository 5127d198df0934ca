// Package errors provides structured error reporting for neumorphic
// rendering tools.
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
	// KindParsing indicates malformed scene or attribute input.
	KindParsing
	// KindConfig indicates a configuration loading failure.
	KindConfig
	// KindRender indicates a layout, paint or encoding failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying the failed operation and its kind.
type Error struct {
	// Op is the operation that failed (e.g., "scene.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the file involved, if any.
	Path string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error for op with the given kind wrapping err.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.DrawFrame").
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

// ParseError represents a value that could not be interpreted.
type ParseError struct {
	// Field is the attribute or key being parsed.
	Field string
	// Value is the rejected input.
	Value string
	// Want describes the accepted values.
	Want string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: want %s", e.Field, e.Value, e.Want)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
