package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels. errors.Is(err, ErrNotFound) matches any *GatewayError
// of that kind.
var (
	ErrNetwork    = errors.New("network error")
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("task not found")
	ErrServer     = errors.New("server error")
	ErrMalformed  = errors.New("malformed response")
	ErrUnknown    = errors.New("unknown gateway error")
)

// GatewayError is the single error shape returned by the task gateway.
type GatewayError struct {
	Op         string          // gateway operation, e.g. "GetTask"
	Kind       Kind            // failure class
	StatusCode int             // HTTP status, 0 when no response arrived
	Payload    json.RawMessage // server body when it was JSON
	Body       []byte          // raw server body of a non-2xx response, JSON or not
	Err        error           // underlying cause
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel so callers don't need errors.As.
func (e *GatewayError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NewError builds a GatewayError.
func NewError(op string, kind Kind, status int, payload json.RawMessage, err error) *GatewayError {
	return &GatewayError{Op: op, Kind: kind, StatusCode: status, Payload: payload, Err: err}
}

// KindOf reports the kind of err, or KindUnknown when err is not a GatewayError.
func KindOf(err error) Kind {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return KindUnknown
}

// Message renders err for a user-facing notification.
func Message(err error) string {
	switch KindOf(err) {
	case KindNetwork:
		return "Cannot reach the task server."
	case KindValidation:
		return "The task was rejected as invalid."
	case KindNotFound:
		return "Task not found."
	case KindServer:
		return "The task server failed. Try again later."
	case KindMalformed:
		return "The task server sent an unexpected response."
	}
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		switch gerr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "The task server refused the request. Check the access token."
		case http.StatusTooManyRequests:
			return "Too many requests. Try again shortly."
		}
	}
	return "Something went wrong."
}
