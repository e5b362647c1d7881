// Package errors provides error values with optional stack traces,
// multi-error and nested-error composition and a configurable formatter.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// StackTrace is a stack of program counters, the first frame is the call site.
type StackTrace []uintptr

type stackTracer interface {
	StackTrace() StackTrace
}

// chain bundles the main error with its sub-errors, the main error determines the message.
type chain []error

func (e chain) Error() string {
	if len(e) > 0 {
		return e[0].Error()
	}
	return ""
}

func (e chain) Unwrap() []error {
	return e
}

type baseError struct {
	msg   string
	trace StackTrace
}

func (e *baseError) Error() string {
	return e.msg
}

func (e *baseError) StackTrace() StackTrace {
	return e.trace
}

type wrappedError struct {
	msg   string
	err   error
	trace StackTrace
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

func (e *wrappedError) StackTrace() StackTrace {
	return e.trace
}

type withStack struct {
	err   error
	trace StackTrace
}

func (e *withStack) Error() string {
	return e.err.Error()
}

func (e *withStack) Unwrap() error {
	return e.err
}

func (e *withStack) StackTrace() StackTrace {
	return e.trace
}

func New(msg string) error {
	return &baseError{msg: msg, trace: callers()}
}

func Errorf(format string, a ...any) error {
	return &withStack{err: fmt.Errorf(format, a...), trace: callers()}
}

// Wrap error with a new message, the original error is available via Unwrap.
func Wrap(err error, msg string) error {
	return &wrappedError{msg: msg, err: err, trace: callers()}
}

// Wrapf error with a new formatted message, the original error is available via Unwrap.
func Wrapf(err error, format string, a ...any) error {
	return &wrappedError{msg: fmt.Sprintf(format, a...), err: err, trace: callers()}
}

// WithStack attaches the call-site stack trace to the error, the message is unchanged.
func WithStack(err error) error {
	return &withStack{err: err, trace: callers()}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func callers() StackTrace {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	trace := make(StackTrace, n)
	for i := 0; i < n; i++ {
		// Program counter points after the call instruction, step back to the call site.
		trace[i] = pcs[i] - 1
	}
	return trace
}
