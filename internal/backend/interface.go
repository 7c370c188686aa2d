package backend

import "context"

// UseCase is the task store behind the development REST API.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (TaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (TaskOutput, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, input AddCommentInput) (TaskOutput, error)
}
