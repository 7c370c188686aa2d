package taskdetail

import "errors"

var (
	ErrNotViewing         = errors.New("task is not being viewed")
	ErrNotEditing         = errors.New("task is not being edited")
	ErrDeleteNotRequested = errors.New("delete was not requested")
	ErrInvalidField       = errors.New("invalid field value")
	ErrClosed             = errors.New("task view is closed")
)
