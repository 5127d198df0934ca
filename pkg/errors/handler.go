package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler and returns the one it
// replaces. A nil h restores a non-verbose LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report sends err to the installed handler, stamping it first if
// Timestamp is unset.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// ReportPanic sends a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Recover stops a panic in progress and reports it as a PanicError for op.
// If errp is non-nil it also receives a KindPanic *Error wrapping the
// PanicError, so a function with a named error result can return it:
//
//	func (e *Engine) DrawFrame() (img *image.RGBA, err error) {
//		defer errors.Recover("engine.DrawFrame", &err)
//		...
//	}
//
// Recover must be the deferred call itself.
func Recover(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	p := &PanicError{Op: op, Value: r, StackTrace: panicStack(), Timestamp: time.Now()}
	ReportPanic(p)
	if errp != nil {
		*errp = &Error{Op: op, Kind: KindPanic, Err: p, Timestamp: p.Timestamp}
	}
}

// panicStack formats the goroutine's stack from the frame that panicked
// outward. Runtime frames and Recover itself are left out.
func panicStack() string {
	var pcs [48]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
