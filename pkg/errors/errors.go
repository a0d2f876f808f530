package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code classifies request failures seen by the console.
type Code string

const (
	CodeTransport    Code = "TRANSPORT_ERROR"
	CodeDecode       Code = "DECODE_ERROR"
	CodeServer       Code = "SERVER_ERROR"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// CodeForStatus maps an HTTP response status to an error code.
func CodeForStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeValidation
	default:
		return CodeServer
	}
}

// Error is a typed request error carrying the server-reported message when
// one was present on the wire.
type Error struct {
	code    Code
	message string
	status  int
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Status reports the HTTP status of the failed response, or zero when the
// request never produced one.
func (e *Error) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

func (e *Error) WithStatus(status int) *Error {
	if e == nil {
		return nil
	}
	e.status = status
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts a typed *Error from an error chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsTransport reports whether the error is a network-level failure rather
// than a server-reported one.
func IsTransport(err error) bool {
	typed := As(err)
	return typed != nil && typed.Code() == CodeTransport
}
