package viewmodel

import (
	"sync"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	"taskboard/internal/tasklist"
	"taskboard/internal/viewstate"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
)

type implViewModel struct {
	l     pkgLog.Logger
	gw    repository.Gateway
	dates *datemath.Parser
	now   func() time.Time

	mu     sync.Mutex
	guard  viewstate.Guard
	state  viewstate.State
	loaded bool
	tasks  []model.Task
	filter tasklist.Filter
	err    error
	notice *viewstate.Notice
}

// New creates a task collection view model. dates decides which calendar
// day counts as "today".
func New(l pkgLog.Logger, gw repository.Gateway, dates *datemath.Parser) tasklist.ViewModel {
	return &implViewModel{
		l:      l,
		gw:     gw,
		dates:  dates,
		now:    time.Now,
		state:  viewstate.StateIdle,
		tasks:  []model.Task{},
		filter: tasklist.DefaultFilter(),
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

func (vm *implViewModel) Snapshot() tasklist.Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	visible := vm.visibleLocked()
	snap := tasklist.Snapshot{
		State:   vm.state,
		Tasks:   cloneTasks(vm.tasks),
		Visible: visible,
		Filter:  vm.filter,
		Err:     vm.err,
	}
	if vm.notice != nil {
		n := *vm.notice
		snap.Notice = &n
	}
	if vm.loaded {
		switch {
		case len(vm.tasks) == 0:
			snap.Empty = tasklist.EmptyNoTasks
		case len(visible) == 0:
			snap.Empty = tasklist.EmptyNoMatches
		}
	}
	return snap
}

func cloneTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
