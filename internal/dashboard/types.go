package dashboard

import (
	"taskboard/internal/viewstate"
	"taskboard/pkg/datemath"
)

// DefaultPeriodDays is how many days, today included, the dashboard covers
// until the user picks a period.
const DefaultPeriodDays = 30

// Stats counts the tasks created within the period by status.
type Stats struct {
	Total      int
	Done       int
	InProgress int
	NotStarted int
}

// DailyCount is the number of tasks created on one calendar day.
type DailyCount struct {
	Day   string // 2006-01-02
	Count int
}

// Snapshot is an immutable copy of the dashboard state.
type Snapshot struct {
	State  viewstate.State
	Period datemath.Period
	Stats  Stats
	Series []DailyCount
	Err    error
}
