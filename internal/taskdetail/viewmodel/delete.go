package viewmodel

import (
	"context"

	"taskboard/internal/task"
	"taskboard/internal/taskdetail"
	"taskboard/internal/viewstate"
)

// RequestDelete opens the delete confirmation.
func (vm *implViewModel) RequestDelete() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.hasTask() {
		return taskdetail.ErrNotViewing
	}
	vm.confirmingDelete = true
	return nil
}

func (vm *implViewModel) CancelDelete() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.confirmingDelete = false
}

// ConfirmDelete deletes the task once RequestDelete has been called. On
// failure the view keeps its phase and shows an error notice.
func (vm *implViewModel) ConfirmDelete(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return taskdetail.ErrClosed
	}
	if !vm.confirmingDelete || !vm.hasTask() {
		vm.mu.Unlock()
		return taskdetail.ErrDeleteNotRequested
	}
	vm.mu.Unlock()

	err := vm.gw.DeleteTask(ctx, vm.id)

	vm.mu.Lock()
	vm.confirmingDelete = false
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return err
	}
	if err != nil {
		vm.l.Warnf(ctx, "taskdetail: delete of %s failed: %v", vm.id, err)
		vm.notice = viewstate.Failure(task.Message(err))
		vm.mu.Unlock()
		return err
	}
	vm.phase = taskdetail.PhaseDeleted
	vm.edit = nil
	vm.notice = viewstate.Success("Task deleted.")
	onDeleted := vm.onDeleted
	vm.mu.Unlock()

	if onDeleted != nil {
		onDeleted(vm.id)
	}
	return nil
}
