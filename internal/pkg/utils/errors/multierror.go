package errors

import (
	"sync"
)

type MultiError interface {
	Len() int
	Error() string
	Unwrap() []error
	WrappedErrors() []error
	Append(errs ...error)
	AppendNested(err error) NestedError
	AppendWithPrefix(err error, prefix string)
	AppendWithPrefixf(err error, format string, a ...any)
	ErrorOrNil() error
}

type multiErrorGetter interface {
	WrappedErrors() []error
}

type multiError struct {
	lock sync.Mutex
	errs []error
}

func NewMultiError(errs ...error) MultiError {
	e := &multiError{}
	e.Append(errs...)
	return e
}

// Append adds errors to the container, a MultiError argument is flattened.
func (e *multiError) Append(errs ...error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	for _, err := range errs {
		if err == nil {
			continue
		}
		if v, ok := err.(multiErrorGetter); ok {
			if _, nested := err.(nestedErrorGetter); !nested {
				e.errs = append(e.errs, v.WrappedErrors()...)
				continue
			}
		}
		e.errs = append(e.errs, err)
	}
}

// AppendNested adds the error as a main error of a new NestedError,
// sub-errors can be added to the returned value later.
func (e *multiError) AppendNested(err error) NestedError {
	nested := NewNestedError(err)
	e.Append(nested)
	return nested
}

func (e *multiError) AppendWithPrefix(err error, prefix string) {
	e.Append(PrefixError(err, prefix))
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.Append(PrefixErrorf(err, format, a...))
}

func (e *multiError) Len() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.errs)
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) Unwrap() []error {
	return e.WrappedErrors()
}

func (e *multiError) WrappedErrors() []error {
	e.lock.Lock()
	defer e.lock.Unlock()
	out := make([]error, len(e.errs))
	copy(out, e.errs)
	return out
}

// ErrorOrNil returns nil if the container is empty,
// the only error if it contains exactly one, otherwise the container itself.
func (e *multiError) ErrorOrNil() error {
	e.lock.Lock()
	defer e.lock.Unlock()
	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
	default:
		return e
	}
}
