package usecase

import (
	"context"
	"strings"

	"taskboard/internal/backend"
	repo "taskboard/internal/backend/repository"
	"taskboard/internal/model"
)

// Create stores a new task, filling the optional fields with their defaults.
func (uc *implUseCase) Create(ctx context.Context, input backend.CreateTaskInput) (backend.TaskOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return backend.TaskOutput{}, backend.ErrInvalidPayload
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Name:        name,
		ProjectID:   coalesce(input.ProjectID, model.ProjectPersonal),
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    coalesce(input.Priority, model.PriorityMedium),
		Status:      coalesce(input.Status, model.StatusNotStarted),
		Comments:    input.Comments,
		Tags:        input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return backend.TaskOutput{}, err
	}
	return backend.TaskOutput{Task: t}, nil
}
