package tasklist

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/pkg/datemath"
)

// ParseStatusFilter accepts "all" or a task status, case-insensitively.
func ParseStatusFilter(value string) (StatusFilter, error) {
	if strings.EqualFold(strings.TrimSpace(value), string(StatusAll)) {
		return StatusAll, nil
	}
	st, err := model.ParseStatus(value)
	if err != nil {
		return "", fmt.Errorf("%w: status %q", ErrInvalidFilter, value)
	}
	return StatusFilter(st), nil
}

// ParsePriorityFilter accepts "all" or a priority, case-insensitively.
func ParsePriorityFilter(value string) (PriorityFilter, error) {
	if strings.EqualFold(strings.TrimSpace(value), string(PriorityAll)) {
		return PriorityAll, nil
	}
	p, err := model.ParsePriority(value)
	if err != nil {
		return "", fmt.Errorf("%w: priority %q", ErrInvalidFilter, value)
	}
	return PriorityFilter(strings.ToLower(string(p))), nil
}

// Matches reports whether t passes every active predicate. today decides
// whether a due date falls on the current calendar day.
func (f Filter) Matches(t model.Task, today func(time.Time) bool) bool {
	if f.Status != "" && f.Status != StatusAll && string(t.Status) != string(f.Status) {
		return false
	}
	if f.Priority != "" && f.Priority != PriorityAll && !strings.EqualFold(string(t.Priority), string(f.Priority)) {
		return false
	}
	if f.TodayOnly && !today(t.DueDate) {
		return false
	}
	return true
}

// Apply returns the tasks that pass f, in their original order. "Today"
// is the calendar day of now in now's location.
func Apply(tasks []model.Task, f Filter, now time.Time) []model.Task {
	dates := datemath.NewParserIn(now.Location())
	today := func(due time.Time) bool { return dates.SameDay(due, now) }

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, today) {
			out = append(out, t)
		}
	}
	return out
}

// Next returns the filter after f in StatusFilters, wrapping around.
func (f StatusFilter) Next() StatusFilter {
	for i, v := range StatusFilters {
		if v == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return StatusAll
}

// Next returns the filter after f in PriorityFilters, wrapping around.
func (f PriorityFilter) Next() PriorityFilter {
	for i, v := range PriorityFilters {
		if v == f {
			return PriorityFilters[(i+1)%len(PriorityFilters)]
		}
	}
	return PriorityAll
}
