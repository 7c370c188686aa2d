package viewmodel

import (
	"context"
	"errors"

	"taskboard/internal/task"
	"taskboard/internal/taskdetail"
)

func (vm *implViewModel) Load(ctx context.Context) error {
	return vm.Refresh(ctx)
}

// Refresh refetches the task. A refresh of a task already on screen keeps
// the current phase, and an open edit buffer, until the result arrives.
func (vm *implViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return taskdetail.ErrClosed
	}
	if vm.phase == taskdetail.PhaseDeleted {
		vm.mu.Unlock()
		return nil
	}
	ticket := vm.guard.Begin()
	if vm.hasTask() {
		vm.refreshing = true
	} else {
		vm.phase = taskdetail.PhaseLoading
	}
	vm.mu.Unlock()

	t, err := vm.gw.GetTask(ctx, vm.id)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.guard.Current(ticket) || vm.phase == taskdetail.PhaseDeleted {
		vm.l.Debugf(ctx, "taskdetail: dropping stale refresh %d for %s", ticket, vm.id)
		return nil
	}
	vm.refreshing = false

	if err != nil {
		vm.err = err
		vm.edit = nil
		vm.confirmingDelete = false
		if errors.Is(err, task.ErrNotFound) {
			vm.phase = taskdetail.PhaseNotFound
		} else {
			vm.l.Warnf(ctx, "taskdetail: refresh of %s failed: %v", vm.id, err)
			vm.phase = taskdetail.PhaseFailed
		}
		return err
	}

	vm.task = t.Clone()
	vm.err = nil
	if vm.phase != taskdetail.PhaseEditing {
		vm.phase = taskdetail.PhaseViewing
	}
	return nil
}
