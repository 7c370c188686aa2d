package taskdetail

import (
	"time"

	"taskboard/internal/model"
	"taskboard/internal/viewstate"
)

// Phase is where the single task screen is in its lifecycle.
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseViewing  Phase = "viewing"
	PhaseEditing  Phase = "editing"
	PhaseNotFound Phase = "not-found"
	PhaseFailed   Phase = "failed"
	PhaseDeleted  Phase = "deleted"
)

// Fields are the three values the edit flow may change.
type Fields struct {
	Status   model.Status
	Priority model.Priority
	DueDate  time.Time // zero means no due date
}

// FieldsOf returns the editable values of t.
func FieldsOf(t model.Task) Fields {
	return Fields{Status: t.Status, Priority: t.Priority, DueDate: t.DueDate}
}

// Snapshot is an immutable copy of the view model state.
type Snapshot struct {
	Phase Phase
	ID    string

	// Task is the last successfully fetched task; zero until the first load.
	Task model.Task
	// Displayed is the edit buffer while editing, the task's values otherwise.
	Displayed Fields
	// Edit is non-nil only in PhaseEditing.
	Edit *Fields

	Refreshing       bool
	ConfirmingDelete bool
	CommentInput     string
	CanSubmitComment bool

	Err    error // last fetch error
	Notice *viewstate.Notice
}
