package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTask marks a wire task that cannot be translated.
var ErrMalformedTask = errors.New("malformed task")

// WireTask is the backend's serialized task.
type WireTask struct {
	ID          string   `json:"_id"         validate:"required"`
	Name        string   `json:"name"`
	ProjectID   string   `json:"projectId"   validate:"omitempty,project"`
	Description string   `json:"description"`
	CreatedDate string   `json:"createdDate" validate:"required"`
	DueDate     *string  `json:"dueDate"`
	Priority    string   `json:"priority"    validate:"required,priority"`
	Status      string   `json:"status"      validate:"required,status"`
	Comments    []string `json:"comments"`
	Tags        []string `json:"tags"`
}

// Accepted timestamp layouts, most specific first.
var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToCanonical translates a wire task into the canonical form. A null or
// empty due date stays zero ("no due date").
func ToCanonical(w WireTask) (Task, error) {
	if err := ValidateStruct(w); err != nil {
		return Task{}, fmt.Errorf("%w: %v", ErrMalformedTask, err)
	}

	created, err := ParseWireTime(w.CreatedDate)
	if err != nil {
		return Task{}, fmt.Errorf("%w: createdDate: %v", ErrMalformedTask, err)
	}

	var due time.Time
	if w.DueDate != nil && *w.DueDate != "" {
		due, err = ParseWireTime(*w.DueDate)
		if err != nil {
			return Task{}, fmt.Errorf("%w: dueDate: %v", ErrMalformedTask, err)
		}
	}

	// Validated above, so these cannot fail.
	status, _ := ParseStatus(w.Status)
	priority, _ := ParsePriority(w.Priority)
	project, _ := ParseProjectID(w.ProjectID)

	comments := w.Comments
	if comments == nil {
		comments = []string{}
	}
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}

	return Task{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		ProjectID:   project,
		CreatedDate: created,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
		Comments:    append([]string(nil), comments...),
		Tags:        append([]string(nil), tags...),
	}, nil
}

// ToCanonicalList translates every wire task, failing on the first bad one.
func ToCanonicalList(ws []WireTask) ([]Task, error) {
	tasks := make([]Task, 0, len(ws))
	for i, w := range ws {
		t, err := ToCanonical(w)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// ToWire serializes a canonical task. Used by the development backend.
func ToWire(t Task) WireTask {
	w := WireTask{
		ID:          t.ID,
		Name:        t.Name,
		ProjectID:   string(t.ProjectID),
		Description: t.Description,
		CreatedDate: FormatWireTime(t.CreatedDate),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Comments:    append([]string{}, t.Comments...),
		Tags:        append([]string{}, t.Tags...),
	}
	if t.HasDueDate() {
		due := FormatWireTime(t.DueDate)
		w.DueDate = &due
	}
	return w
}

// ParseWireTime parses an ISO-8601 timestamp as sent by the backend.
func ParseWireTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range wireTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatWireTime formats t the way JavaScript's toISOString does.
func FormatWireTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
