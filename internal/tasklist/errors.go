package tasklist

import "errors"

var (
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrClosed        = errors.New("task list is closed")
)
