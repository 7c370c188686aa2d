package dashboard

import "errors"

var (
	ErrInvalidPeriod = errors.New("period start is after its end")
	ErrClosed        = errors.New("dashboard is closed")
)
