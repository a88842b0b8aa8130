package pagescrape

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	ENETWORK  = "network"
	EHTTP     = "http"
	EPARSE    = "parse"
	EINTERNAL = "internal"
)

// Error represents an application-specific error. Implementations translate
// foreign errors (net/http, html parsing, filesystem) into an Error at the
// package boundary so callers only ever switch on Code.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Status is the HTTP status code for EHTTP errors, zero otherwise.
	Status int
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("pagescrape error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// HTTPStatus returns the response status carried by an EHTTP error.
// Returns 0 for any other error.
func HTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code == EHTTP {
		return e.Status
	}
	return 0
}

// ErrorKind returns the user-facing name of the error's kind, used in
// one-line CLI diagnostics.
func ErrorKind(err error) string {
	switch ErrorCode(err) {
	case "":
		return ""
	case EINVALID:
		return "InvalidInput"
	case ENETWORK:
		return "NetworkError"
	case EHTTP:
		return "HTTPError"
	case EPARSE:
		return "ParseError"
	default:
		return "InternalError"
	}
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// HTTPErrorf returns an EHTTP Error carrying the response status code.
func HTTPErrorf(status int, format string, args ...any) *Error {
	return &Error{
		Code:    EHTTP,
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}
}
