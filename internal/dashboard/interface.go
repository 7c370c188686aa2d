package dashboard

import (
	"context"
	"time"
)

// ViewModel owns the dashboard screen. Safe for concurrent use.
type ViewModel interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	// SetPeriod sets the inclusive day range. A zero bound is open.
	SetPeriod(from, to time.Time) error
	Snapshot() Snapshot
	Close()
}
