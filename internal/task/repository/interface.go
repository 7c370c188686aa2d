package repository

import (
	"context"

	"taskboard/internal/model"
)

// Gateway is the only component allowed to perform network I/O for tasks.
// Every failure is a *task.GatewayError; nothing is retried.
//
//go:generate mockery --name Gateway
type Gateway interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	CreateTask(ctx context.Context, draft model.Draft) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.Patch) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string, text string) (model.Task, error)
}
