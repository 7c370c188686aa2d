package backend

import (
	"time"

	"taskboard/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Name        string
	ProjectID   model.ProjectID
	Description string
	DueDate     time.Time
	Priority    model.Priority
	Status      model.Status
	Comments    []string
	Tags        []string
}

type ListTasksInput struct {
	Status   model.Status   // empty = any
	Priority model.Priority // empty = any
}

// UpdateTaskInput is a partial update; nil fields keep their stored value.
type UpdateTaskInput struct {
	ID          string
	Name        *string
	ProjectID   *model.ProjectID
	Description *string
	DueDate     *time.Time
	Priority    *model.Priority
	Status      *model.Status
	Tags        *[]string
}

type AddCommentInput struct {
	ID      string
	Comment string
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}
