package errors

import (
	"fmt"
	"runtime"
)

// Error carries the stack of the goroutine that created it. Error()
// prints the stack, Message() does not.
type Error struct {
	Err   error
	Stack []byte
}

func stack() []byte {
	buf := make([]byte, 50000)
	n := runtime.Stack(buf, false)
	trace := make([]byte, n)
	copy(trace, buf)
	return trace
}

func Errorf(format string, args ...interface{}) error {
	return &Error{
		Err:   fmt.Errorf(format, args...),
		Stack: stack(),
	}
}

// Wrap annotates err with a message. A nil err stays nil. If err already
// carries a stack it is kept rather than captured again.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if e, ok := err.(*Error); ok {
		return &Error{
			Err:   fmt.Errorf("%s: %w", msg, e.Err),
			Stack: e.Stack,
		}
	}
	return &Error{
		Err:   fmt.Errorf("%s: %w", msg, err),
		Stack: stack(),
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s\n%s", e.Err, string(e.Stack))
}

func (e *Error) String() string {
	return e.Error()
}

func (e *Error) Message() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the error text without a stack trace.
func Message(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message()
	}
	return err.Error()
}
