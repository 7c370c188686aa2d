package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows the HTTP status it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any // optional machine-readable detail, rendered as "errors"
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError for the given status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewValidationError creates a 400 carrying per-field details.
func NewValidationError(message string, details any) *HTTPError {
	return &HTTPError{StatusCode: http.StatusBadRequest, Message: message, Details: details}
}

var (
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "not found")
	ErrBadRequest   = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrTooManyCalls = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
)

// AsHTTPError unwraps err into an HTTPError, if it is one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr, true
	}
	return nil, false
}
