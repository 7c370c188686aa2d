package viewmodel

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/tasklist"
	"taskboard/internal/viewstate"
)

func (vm *implViewModel) Create(ctx context.Context, draft model.Draft) error {
	if vm.closed() {
		return tasklist.ErrClosed
	}
	created, err := vm.gw.CreateTask(ctx, draft)
	return vm.afterMutation(ctx, "create", err, fmt.Sprintf("Task %q created.", created.Name))
}

func (vm *implViewModel) Update(ctx context.Context, id string, patch model.Patch) error {
	if vm.closed() {
		return tasklist.ErrClosed
	}
	updated, err := vm.gw.UpdateTask(ctx, id, patch)
	return vm.afterMutation(ctx, "update", err, fmt.Sprintf("Task %q updated.", updated.Name))
}

func (vm *implViewModel) Delete(ctx context.Context, id string) error {
	if vm.closed() {
		return tasklist.ErrClosed
	}
	err := vm.gw.DeleteTask(ctx, id)
	return vm.afterMutation(ctx, "delete", err, "Task deleted.")
}

func (vm *implViewModel) AddComment(ctx context.Context, id, text string) error {
	if vm.closed() {
		return tasklist.ErrClosed
	}
	_, err := vm.gw.AddComment(ctx, id, text)
	return vm.afterMutation(ctx, "comment", err, "Comment added.")
}

// afterMutation records the outcome notice and, on success, refetches the
// list. A failed mutation leaves the current list untouched.
func (vm *implViewModel) afterMutation(ctx context.Context, op string, err error, success string) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return err
	}
	if err != nil {
		vm.l.Warnf(ctx, "tasklist: %s failed: %v", op, err)
		vm.notice = viewstate.Failure(task.Message(err))
		vm.mu.Unlock()
		return err
	}
	vm.notice = viewstate.Success(success)
	vm.mu.Unlock()

	// The refresh outcome lands in the snapshot; the mutation itself succeeded.
	_ = vm.Refresh(ctx)
	return nil
}

func (vm *implViewModel) closed() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.guard.Closed()
}
