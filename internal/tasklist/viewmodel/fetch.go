package viewmodel

import (
	"context"

	"taskboard/internal/tasklist"
	"taskboard/internal/viewstate"
)

func (vm *implViewModel) Mount(ctx context.Context) error {
	vm.l.Debugf(ctx, "tasklist: mount")
	return vm.Refresh(ctx)
}

// Refresh refetches the authoritative list. Only the most recently started
// refresh applies its result; the rest are dropped.
func (vm *implViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return tasklist.ErrClosed
	}
	ticket := vm.guard.Begin()
	vm.state = viewstate.StateLoading
	vm.mu.Unlock()

	tasks, err := vm.gw.ListTasks(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.guard.Current(ticket) {
		vm.l.Debugf(ctx, "tasklist: dropping stale refresh %d", ticket)
		return nil
	}
	if err != nil {
		vm.l.Warnf(ctx, "tasklist: refresh failed: %v", err)
		vm.state = viewstate.StateFailed
		vm.err = err
		return err
	}

	vm.state = viewstate.StateReady
	vm.loaded = true
	vm.tasks = cloneTasks(tasks)
	vm.err = nil
	return nil
}
