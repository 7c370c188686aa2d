package backend

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrEmptyComment   = errors.New("comment must not be empty")
)
