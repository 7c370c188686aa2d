package dashboard

import (
	"sort"

	"taskboard/internal/model"
	"taskboard/pkg/datemath"
)

// Compute summarises the tasks whose creation day falls inside period.
// The series only holds days with at least one task, oldest first.
func Compute(tasks []model.Task, period datemath.Period, dates *datemath.Parser) (Stats, []DailyCount) {
	var stats Stats
	perDay := make(map[string]int)

	for _, t := range tasks {
		if !dates.Contains(period, t.CreatedDate) {
			continue
		}
		stats.Total++
		switch t.Status {
		case model.StatusDone:
			stats.Done++
		case model.StatusInProgress:
			stats.InProgress++
		default:
			stats.NotStarted++
		}
		perDay[dates.DayKey(t.CreatedDate)]++
	}

	series := make([]DailyCount, 0, len(perDay))
	for day, n := range perDay {
		series = append(series, DailyCount{Day: day, Count: n})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Day < series[j].Day })
	return stats, series
}
