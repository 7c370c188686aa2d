package viewmodel

import (
	"context"
	"sync"
	"time"

	"taskboard/internal/dashboard"
	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	"taskboard/internal/viewstate"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
)

type implViewModel struct {
	l     pkgLog.Logger
	gw    repository.Gateway
	dates *datemath.Parser

	now   func() time.Time

	mu    sync.Mutex
	guard viewstate.Guard
	state viewstate.State
	tasks []model.Task
	// period is nil until SetPeriod; the default window then follows now.
	period *datemath.Period
	err    error
}

// New creates a dashboard view model covering the last
// dashboard.DefaultPeriodDays days up to now(), re-evaluated on every
// Snapshot until a period is set explicitly.
func New(l pkgLog.Logger, gw repository.Gateway, dates *datemath.Parser, now func() time.Time) dashboard.ViewModel {
	if now == nil {
		now = time.Now
	}
	return &implViewModel{
		l:     l,
		gw:    gw,
		dates: dates,
		now:   now,
		state: viewstate.StateIdle,
	}
}

func (vm *implViewModel) Load(ctx context.Context) error {
	return vm.Refresh(ctx)
}

func (vm *implViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	if vm.guard.Closed() {
		vm.mu.Unlock()
		return dashboard.ErrClosed
	}
	ticket := vm.guard.Begin()
	vm.state = viewstate.StateLoading
	vm.mu.Unlock()

	tasks, err := vm.gw.ListTasks(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	if !vm.guard.Current(ticket) {
		return nil
	}
	if err != nil {
		vm.l.Warnf(ctx, "dashboard: refresh failed: %v", err)
		vm.state = viewstate.StateFailed
		vm.err = err
		return err
	}
	vm.state = viewstate.StateReady
	vm.tasks = tasks
	vm.err = nil
	return nil
}

func (vm *implViewModel) SetPeriod(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && vm.dates.StartOfDay(from).After(vm.dates.StartOfDay(to)) {
		return dashboard.ErrInvalidPeriod
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.period = &datemath.Period{From: from, To: to}
	return nil
}

// periodLocked returns the effective period. Callers hold vm.mu.
func (vm *implViewModel) periodLocked() datemath.Period {
	if vm.period != nil {
		return *vm.period
	}
	return vm.dates.LastDays(vm.now(), dashboard.DefaultPeriodDays)
}

func (vm *implViewModel) Snapshot() dashboard.Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	period := vm.periodLocked()
	stats, series := dashboard.Compute(vm.tasks, period, vm.dates)
	return dashboard.Snapshot{
		State:  vm.state,
		Period: period,
		Stats:  stats,
		Series: series,
		Err:    vm.err,
	}
}

func (vm *implViewModel) Close() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.guard.Close()
}
