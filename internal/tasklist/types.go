package tasklist

import (
	"taskboard/internal/model"
	"taskboard/internal/viewstate"
)

// StatusFilter is "all" or one task status.
type StatusFilter string

// PriorityFilter is "all" or a lowercase priority.
type PriorityFilter string

const (
	StatusAll   StatusFilter   = "all"
	PriorityAll PriorityFilter = "all"
)

// StatusFilters lists every accepted status filter in cycling order.
var StatusFilters = []StatusFilter{
	StatusAll,
	StatusFilter(model.StatusNotStarted),
	StatusFilter(model.StatusInProgress),
	StatusFilter(model.StatusDone),
}

// PriorityFilters lists every accepted priority filter in cycling order.
var PriorityFilters = []PriorityFilter{PriorityAll, "low", "medium", "high"}

// Filter is the three independent predicates applied to the task list.
type Filter struct {
	Status    StatusFilter
	Priority  PriorityFilter
	TodayOnly bool
}

// DefaultFilter shows every task.
func DefaultFilter() Filter {
	return Filter{Status: StatusAll, Priority: PriorityAll}
}

// Empty explains why a ready list shows nothing.
type Empty string

const (
	EmptyNone      Empty = ""
	EmptyNoTasks   Empty = "no-tasks"   // the fetch returned none
	EmptyNoMatches Empty = "no-matches" // filters hid everything
)

// Snapshot is an immutable copy of the view model state.
type Snapshot struct {
	State   viewstate.State
	Tasks   []model.Task
	Visible []model.Task
	Filter  Filter
	Err     error // last fetch error, kept for a retry affordance
	Notice  *viewstate.Notice
	Empty   Empty
}
