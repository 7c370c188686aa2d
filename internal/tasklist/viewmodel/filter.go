package viewmodel

import (
	"taskboard/internal/model"
	"taskboard/internal/tasklist"
)

func (vm *implViewModel) SetStatusFilter(value string) error {
	f, err := tasklist.ParseStatusFilter(value)
	if err != nil {
		return err
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filter.Status = f
	return nil
}

func (vm *implViewModel) SetPriorityFilter(value string) error {
	f, err := tasklist.ParsePriorityFilter(value)
	if err != nil {
		return err
	}
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filter.Priority = f
	return nil
}

func (vm *implViewModel) SetTodayOnly(on bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filter.TodayOnly = on
}

func (vm *implViewModel) ToggleTodayOnly() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.filter.TodayOnly = !vm.filter.TodayOnly
}

func (vm *implViewModel) VisibleTasks() []model.Task {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.visibleLocked()
}

// visibleLocked is recomputed on every read, so it always reflects the
// current tasks, filters and clock. Callers hold vm.mu.
func (vm *implViewModel) visibleLocked() []model.Task {
	now := vm.now().In(vm.dates.Location())
	return cloneTasks(tasklist.Apply(vm.tasks, vm.filter, now))
}
