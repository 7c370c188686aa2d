package usecase

import (
	"context"
	"strings"

	"taskboard/internal/backend"
	repo "taskboard/internal/backend/repository"
)

// AddComment appends one comment to the task's list.
func (uc *implUseCase) AddComment(ctx context.Context, input backend.AddCommentInput) (backend.TaskOutput, error) {
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return backend.TaskOutput{}, backend.ErrEmptyComment
	}

	existing, err := uc.get(ctx, input.ID)
	if err != nil {
		return backend.TaskOutput{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          existing.ID,
		Name:        existing.Name,
		ProjectID:   existing.ProjectID,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		Priority:    existing.Priority,
		Status:      existing.Status,
		Comments:    append(existing.Comments, comment),
		Tags:        existing.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment UpdateTask: %v", err)
		return backend.TaskOutput{}, err
	}
	return backend.TaskOutput{Task: t}, nil
}
