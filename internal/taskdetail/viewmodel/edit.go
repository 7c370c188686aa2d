package viewmodel

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/taskdetail"
	"taskboard/internal/viewstate"
)

// BeginEdit copies the task's status, priority and due date into a fresh
// edit buffer.
func (vm *implViewModel) BeginEdit() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.phase != taskdetail.PhaseViewing {
		return taskdetail.ErrNotViewing
	}
	buf := taskdetail.FieldsOf(vm.task)
	vm.edit = &buf
	vm.phase = taskdetail.PhaseEditing
	return nil
}

func (vm *implViewModel) SetEditStatus(status model.Status) error {
	st, err := model.ParseStatus(string(status))
	if err != nil {
		return fmt.Errorf("%w: %v", taskdetail.ErrInvalidField, err)
	}
	return vm.updateBuffer(func(f *taskdetail.Fields) { f.Status = st })
}

func (vm *implViewModel) SetEditPriority(priority model.Priority) error {
	p, err := model.ParsePriority(string(priority))
	if err != nil {
		return fmt.Errorf("%w: %v", taskdetail.ErrInvalidField, err)
	}
	return vm.updateBuffer(func(f *taskdetail.Fields) { f.Priority = p })
}

// SetEditDueDate sets the buffer's due date. Clearing a due date is not
// part of this flow, so the zero time is rejected.
func (vm *implViewModel) SetEditDueDate(due time.Time) error {
	if due.IsZero() {
		return fmt.Errorf("%w: due date is required", taskdetail.ErrInvalidField)
	}
	return vm.updateBuffer(func(f *taskdetail.Fields) { f.DueDate = due })
}

func (vm *implViewModel) updateBuffer(fn func(*taskdetail.Fields)) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.phase != taskdetail.PhaseEditing || vm.edit == nil {
		return taskdetail.ErrNotEditing
	}
	fn(vm.edit)
	return nil
}

// Cancel drops the edit buffer without any network call.
func (vm *implViewModel) Cancel() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.phase != taskdetail.PhaseEditing {
		return
	}
	vm.edit = nil
	vm.phase = taskdetail.PhaseViewing
}

// Save sends the task's editable fields with the buffer applied. On
// failure the buffer is kept and the view stays in editing.
func (vm *implViewModel) Save(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return taskdetail.ErrClosed
	}
	if vm.phase != taskdetail.PhaseEditing || vm.edit == nil {
		vm.mu.Unlock()
		return taskdetail.ErrNotEditing
	}
	patch := model.PatchFromTask(vm.task)
	buf := *vm.edit
	vm.mu.Unlock()

	patch.Status = &buf.Status
	patch.Priority = &buf.Priority
	if !buf.DueDate.IsZero() {
		patch.DueDate = &buf.DueDate
	}

	updated, err := vm.gw.UpdateTask(ctx, vm.id, patch)

	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return err
	}
	if err != nil {
		vm.l.Warnf(ctx, "taskdetail: save of %s failed: %v", vm.id, err)
		vm.notice = viewstate.Failure(task.Message(err))
		vm.mu.Unlock()
		return err
	}
	vm.task = updated.Clone()
	vm.edit = nil
	vm.phase = taskdetail.PhaseViewing
	vm.notice = viewstate.Success("Task updated.")
	vm.mu.Unlock()

	_ = vm.Refresh(ctx)
	return nil
}
