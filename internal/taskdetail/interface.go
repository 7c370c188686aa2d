package taskdetail

import (
	"context"
	"time"

	"taskboard/internal/model"
)

// ViewModel owns one task's screen: viewing, editing status, priority and
// due date, commenting and a confirmed delete. Safe for concurrent use.
type ViewModel interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error

	BeginEdit() error
	SetEditStatus(status model.Status) error
	SetEditPriority(priority model.Priority) error
	SetEditDueDate(due time.Time) error
	Save(ctx context.Context) error
	Cancel()
	Displayed() Fields

	SetCommentInput(text string)
	SubmitComment(ctx context.Context) error

	RequestDelete() error
	CancelDelete()
	ConfirmDelete(ctx context.Context) error

	Snapshot() Snapshot
	DismissNotice()
	Close()
}
