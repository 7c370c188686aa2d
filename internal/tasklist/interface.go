package tasklist

import (
	"context"

	"taskboard/internal/model"
)

// ViewModel owns the task collection screen: the authoritative list,
// the active filters and mutation notices. Safe for concurrent use.
type ViewModel interface {
	Mount(ctx context.Context) error
	Refresh(ctx context.Context) error

	SetStatusFilter(value string) error
	SetPriorityFilter(value string) error
	SetTodayOnly(on bool)
	ToggleTodayOnly()
	VisibleTasks() []model.Task

	Create(ctx context.Context, draft model.Draft) error
	Update(ctx context.Context, id string, patch model.Patch) error
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, id, text string) error

	Snapshot() Snapshot
	DismissNotice()
	Close()
}
