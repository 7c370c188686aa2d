package viewmodel

import (
	"context"

	"taskboard/internal/task"
	"taskboard/internal/taskdetail"
	"taskboard/internal/viewstate"
)

func (vm *implViewModel) SetCommentInput(text string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.commentInput = text
}

// SubmitComment appends the comment input. Blank input is a no-op.
func (vm *implViewModel) SubmitComment(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return taskdetail.ErrClosed
	}
	if !vm.canCommentLocked() {
		vm.mu.Unlock()
		return nil
	}
	text := vm.commentInput
	vm.mu.Unlock()

	_, err := vm.gw.AddComment(ctx, vm.id, text)

	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return err
	}
	if err != nil {
		vm.l.Warnf(ctx, "taskdetail: comment on %s failed: %v", vm.id, err)
		vm.notice = viewstate.Failure(task.Message(err))
		vm.mu.Unlock()
		return err
	}
	if vm.commentInput == text {
		vm.commentInput = ""
	}
	vm.notice = viewstate.Success("Comment added.")
	vm.mu.Unlock()

	_ = vm.Refresh(ctx)
	return nil
}
