package repository

import (
	"time"

	"taskboard/internal/model"
)

// CreateTaskOptions holds every field of a new task except the
// store-assigned id and creation date.
type CreateTaskOptions struct {
	Name        string
	ProjectID   model.ProjectID
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Status      model.Status
	Comments    []string
	Tags        []string
}

// GetOneTaskOptions selects a single task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filters for listing tasks. Empty fields match all.
type ListTasksOptions struct {
	Status   model.Status
	Priority model.Priority
}

// UpdateTaskOptions replaces every mutable field of the stored task.
type UpdateTaskOptions struct {
	ID          string
	Name        string
	ProjectID   model.ProjectID
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Status      model.Status
	Comments    []string
	Tags        []string
}
