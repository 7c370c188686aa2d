package viewmodel

import (
	"strings"
	"sync"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	"taskboard/internal/taskdetail"
	"taskboard/internal/viewstate"
	pkgLog "taskboard/pkg/log"
)

type implViewModel struct {
	l         pkgLog.Logger
	gw        repository.Gateway
	id        string
	onDeleted func(id string)

	mu               sync.Mutex
	guard            viewstate.Guard
	phase            taskdetail.Phase
	refreshing       bool
	task             model.Task
	edit             *taskdetail.Fields
	confirmingDelete bool
	commentInput     string
	err              error
	notice           *viewstate.Notice
}

// New creates the view model for the task with the given id. onDeleted,
// when set, runs after a confirmed delete succeeds so the caller can
// navigate away.
func New(l pkgLog.Logger, gw repository.Gateway, id string, onDeleted func(id string)) taskdetail.ViewModel {
	return &implViewModel{
		l:         l,
		gw:        gw,
		id:        id,
		onDeleted: onDeleted,
		phase:     taskdetail.PhaseLoading,
	}
}

func (vm *implViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.guard.Close()
}

func (vm *implViewModel) DismissNotice() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.notice = nil
}

func (vm *implViewModel) Displayed() taskdetail.Fields {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.displayedLocked()
}

func (vm *implViewModel) displayedLocked() taskdetail.Fields {
	if vm.phase == taskdetail.PhaseEditing && vm.edit != nil {
		return *vm.edit
	}
	return taskdetail.FieldsOf(vm.task)
}

func (vm *implViewModel) Snapshot() taskdetail.Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	snap := taskdetail.Snapshot{
		Phase:            vm.phase,
		ID:               vm.id,
		Task:             vm.task.Clone(),
		Displayed:        vm.displayedLocked(),
		Refreshing:       vm.refreshing,
		ConfirmingDelete: vm.confirmingDelete,
		CommentInput:     vm.commentInput,
		CanSubmitComment: vm.canCommentLocked(),
		Err:              vm.err,
	}
	if vm.edit != nil {
		e := *vm.edit
		snap.Edit = &e
	}
	if vm.notice != nil {
		n := *vm.notice
		snap.Notice = &n
	}
	return snap
}

// hasTask reports whether a task is on screen. Callers hold vm.mu.
func (vm *implViewModel) hasTask() bool {
	return vm.phase == taskdetail.PhaseViewing || vm.phase == taskdetail.PhaseEditing
}

func (vm *implViewModel) canCommentLocked() bool {
	return vm.hasTask() && strings.TrimSpace(vm.commentInput) != ""
}
