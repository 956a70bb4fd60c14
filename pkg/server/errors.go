package server

import (
	"errors"
	"fmt"
)

type ErrorCode uint

const (
	ErrUnknown ErrorCode = iota
	ErrInternalServerError
	ErrBadParamInput
)

// Error carries an ErrorCode next to the wrapped error so handlers can pick the
// HTTP status without knowing the engine's error types.
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Message() string {
	return e.msg
}

// CodeOf returns the code of the first *Error in err's chain, ErrUnknown otherwise.
func CodeOf(err error) ErrorCode {
	var ierr *Error
	if errors.As(err, &ierr) {
		return ierr.Code()
	}
	return ErrUnknown
}
