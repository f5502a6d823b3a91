package pepper

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	EMALFORMED = "malformed"
	ENOMATCH   = "nomatch"
	ENOTFOUND  = "not_found"
	EREMOTE    = "remote"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pepper error: code=%s message=%s", e.Code, e.Message)
}

// StatusError reports a non-success HTTP status returned by the remote host.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	var s *StatusError
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	} else if errors.As(err, &s) {
		if s.StatusCode == 404 {
			return ENOTFOUND
		}
		return EREMOTE
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return their own text.
func ErrorMessage(err error) string {
	var e *Error
	var s *StatusError
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	} else if errors.As(err, &s) {
		return fmt.Sprintf("Received error status code '%d' from python.org", s.StatusCode)
	}
	return err.Error()
}

// ErrorStatus returns the HTTP status carried by err, or 0 if there is none.
func ErrorStatus(err error) int {
	var s *StatusError
	if errors.As(err, &s) {
		return s.StatusCode
	}
	return 0
}
