package usecase

import (
	"context"

	"taskboard/internal/backend"
	repo "taskboard/internal/backend/repository"
	"taskboard/internal/model"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (backend.TaskOutput, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return backend.TaskOutput{}, err
	}
	return backend.TaskOutput{Task: t}, nil
}

// Update applies a partial update. Fields left nil keep their stored value.
func (uc *implUseCase) Update(ctx context.Context, input backend.UpdateTaskInput) (backend.TaskOutput, error) {
	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return backend.TaskOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		Name:        pick(input.Name, existing.Name),
		ProjectID:   pick(input.ProjectID, existing.ProjectID),
		Description: pick(input.Description, existing.Description),
		DueDate:     pick(input.DueDate, existing.DueDate),
		Priority:    pick(input.Priority, existing.Priority),
		Status:      pick(input.Status, existing.Status),
		Comments:    existing.Comments,
		Tags:        pick(input.Tags, existing.Tags),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return backend.TaskOutput{}, err
	}
	return backend.TaskOutput{Task: t}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.get GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, backend.ErrTaskNotFound
	}
	return t, nil
}
