package calendarsync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/pkg/datemath"
	"taskboard/pkg/gcalendar"
	pkgLog "taskboard/pkg/log"
)

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	ListExported(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Summary counts what one export did.
type Summary struct {
	Created int
	Skipped int
	Failed  int
}

// Exporter copies open, dated tasks to a calendar as all-day events.
type Exporter struct {
	calendar   CalendarClient
	calendarID string
	dates      *datemath.Parser
	l          pkgLog.Logger
}

func NewExporter(calendar CalendarClient, calendarID string, dates *datemath.Parser, l pkgLog.Logger) *Exporter {
	return &Exporter{
		calendar:   calendar,
		calendarID: calendarID,
		dates:      dates,
		l:          l,
	}
}

// Export creates one event per task with a due date that is not done.
// Tasks already exported for the same day are skipped, so running it
// twice creates nothing new. A failed insert is counted and the rest
// continue; a failed lookup aborts before anything is created.
func (e *Exporter) Export(ctx context.Context, tasks []model.Task) (Summary, error) {
	var sum Summary
	var pending []model.Task
	for _, t := range tasks {
		if !t.HasDueDate() || t.Status == model.StatusDone {
			sum.Skipped++
			continue
		}
		pending = append(pending, t)
	}
	if len(pending) == 0 {
		return sum, nil
	}

	existing, err := e.exported(ctx, pending)
	if err != nil {
		return sum, fmt.Errorf("calendarsync: failed to list exported events: %w", err)
	}

	for _, t := range pending {
		day := e.dates.StartOfDay(t.DueDate)
		if existing[exportKey(t.ID, e.dates.DayKey(day))] {
			sum.Skipped++
			continue
		}

		_, err := e.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
			CalendarID:  e.calendarID,
			TaskID:      t.ID,
			Summary:     t.Name,
			Description: describe(t),
			Date:        day,
		})
		if err != nil {
			e.l.Errorf(ctx, "calendarsync: failed to export task %s: %v", t.ID, err)
			sum.Failed++
			continue
		}
		sum.Created++
	}

	e.l.Infof(ctx, "calendarsync: export done: created=%d skipped=%d failed=%d", sum.Created, sum.Skipped, sum.Failed)
	return sum, nil
}

// exported returns the task/day pairs that already have an event in the
// window spanning every pending due date.
func (e *Exporter) exported(ctx context.Context, pending []model.Task) (map[string]bool, error) {
	first, last := pending[0].DueDate, pending[0].DueDate
	for _, t := range pending[1:] {
		if t.DueDate.Before(first) {
			first = t.DueDate
		}
		if t.DueDate.After(last) {
			last = t.DueDate
		}
	}

	events, err := e.calendar.ListExported(ctx, gcalendar.ListEventsRequest{
		CalendarID: e.calendarID,
		TimeMin:    e.dates.StartOfDay(first),
		TimeMax:    e.dates.StartOfDay(last).Add(48 * time.Hour),
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev.TaskID != "" {
			seen[exportKey(ev.TaskID, ev.Date)] = true
		}
	}
	return seen, nil
}

func exportKey(taskID, day string) string {
	return taskID + "|" + day
}

func describe(t model.Task) string {
	var b strings.Builder
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Project: %s\nPriority: %s\nStatus: %s", t.ProjectID, t.Priority, model.FormatStatus(t.Status))
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "\nTags: %s", strings.Join(t.Tags, ", "))
	}
	return b.String()
}
