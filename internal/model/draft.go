package model

import (
	"strings"
	"time"
)

// Draft is the create payload: a task without the backend-assigned
// id and creation date.
type Draft struct {
	Name        string    `validate:"required,notblank"`
	ProjectID   ProjectID `validate:"omitempty,project"`
	Description string
	DueDate     time.Time
	Priority    Priority  `validate:"required,priority"`
	Status      Status    `validate:"required,status"`
	Comments    []string
	Tags        []string
}

// NewDraft returns a draft carrying the create-form defaults.
func NewDraft(name string, due time.Time) Draft {
	return Draft{
		Name:      name,
		ProjectID: ProjectPersonal,
		DueDate:   due,
		Priority:  PriorityMedium,
		Status:    StatusNotStarted,
		Comments:  []string{},
		Tags:      []string{},
	}
}

// Normalize fills defaults for unset optional fields.
func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	if d.ProjectID == "" {
		d.ProjectID = ProjectPersonal
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if d.Status == "" {
		d.Status = StatusNotStarted
	}
	if d.Comments == nil {
		d.Comments = []string{}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

// Patch is a partial update. Nil fields are left unchanged server-side.
type Patch struct {
	Name        *string    `validate:"omitnil,notblank"`
	ProjectID   *ProjectID `validate:"omitempty,project"`
	Description *string
	DueDate     *time.Time
	Priority    *Priority  `validate:"omitempty,priority"`
	Status      *Status    `validate:"omitempty,status"`
	Tags        *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.ProjectID == nil && p.Description == nil &&
		p.DueDate == nil && p.Priority == nil && p.Status == nil && p.Tags == nil
}

// PatchFromTask passes every editable field of t through unchanged.
// Comments are append-only and travel through AddComment instead.
func PatchFromTask(t Task) Patch {
	name := t.Name
	project := t.ProjectID
	desc := t.Description
	priority := t.Priority
	status := t.Status
	tags := append([]string{}, t.Tags...)

	p := Patch{
		Name:        &name,
		ProjectID:   &project,
		Description: &desc,
		Priority:    &priority,
		Status:      &status,
		Tags:        &tags,
	}
	if t.HasDueDate() {
		due := t.DueDate
		p.DueDate = &due
	}
	return p
}
