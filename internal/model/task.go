package model

import (
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every valid priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ProjectID is the fixed project bucket a task belongs to.
type ProjectID string

const (
	ProjectPersonal  ProjectID = "Personal"
	ProjectWork      ProjectID = "Work"
	ProjectEducation ProjectID = "Education"
	ProjectOther     ProjectID = "Other"
)

// Projects lists every valid project.
var Projects = []ProjectID{ProjectPersonal, ProjectWork, ProjectEducation, ProjectOther}

// Task is the client-side canonical form of a task.
type Task struct {
	ID          string
	Name        string
	Description string
	ProjectID   ProjectID
	CreatedDate time.Time
	DueDate     time.Time // zero when the backend sent no due date
	Priority    Priority
	Status      Status
	Comments    []string
	Tags        []string
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// Clone returns a deep copy so callers can't alias view-model state.
func (t Task) Clone() Task {
	c := t
	c.Comments = append([]string(nil), t.Comments...)
	c.Tags = append([]string(nil), t.Tags...)
	return c
}

// ParseStatus parses a status case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ParsePriority parses a priority case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// ParseProjectID parses a project case-insensitively. Empty means Personal.
func ParseProjectID(s string) (ProjectID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ProjectPersonal, nil
	}
	for _, p := range Projects {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown project %q", s)
}

// Next returns the status after s, wrapping around.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusNotStarted
}

// Next returns the priority after p, wrapping around.
func (p Priority) Next() Priority {
	for i, pr := range Priorities {
		if pr == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}
