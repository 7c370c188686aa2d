package usecase

import (
	"context"

	"taskboard/internal/backend"
	repo "taskboard/internal/backend/repository"
)

// List returns every task matching the optional filters, oldest first.
func (uc *implUseCase) List(ctx context.Context, input backend.ListTasksInput) (backend.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:   input.Status,
		Priority: input.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return backend.ListTasksOutput{}, err
	}
	return backend.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}
