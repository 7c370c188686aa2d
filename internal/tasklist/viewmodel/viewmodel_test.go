package viewmodel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository/mocks"
	"taskboard/internal/tasklist"
	"taskboard/internal/viewstate"
	"taskboard/pkg/datemath"
	pkgLog "taskboard/pkg/log"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestVM(t *testing.T) (*implViewModel, *mocks.Gateway) {
	t.Helper()
	gw := mocks.NewGateway(t)
	vm := New(pkgLog.NewNop(), gw, datemath.NewParserIn(time.UTC)).(*implViewModel)
	vm.now = func() time.Time { return testNow }
	return vm, gw
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "a", Name: "Report", Status: model.StatusNotStarted, Priority: model.PriorityHigh, DueDate: testNow},
		{ID: "b", Name: "Gym", Status: model.StatusDone, Priority: model.PriorityLow},
		{ID: "c", Name: "Read", Status: model.StatusInProgress, Priority: model.PriorityHigh, DueDate: testNow.AddDate(0, 0, 1)},
	}
}

func visibleIDs(tasks []model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestMountEmptyList(t *testing.T) {
	vm, gw := newTestVM(t)
	gw.On("ListTasks", mock.Anything).Return([]model.Task{}, nil).Once()

	assert.Equal(t, viewstate.StateIdle, vm.Snapshot().State)
	require.NoError(t, vm.Mount(context.Background()))

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateReady, snap.State)
	assert.Empty(t, snap.Visible)
	assert.Equal(t, tasklist.EmptyNoTasks, snap.Empty)
	assert.NoError(t, snap.Err)
}

func TestFiltersCombine(t *testing.T) {
	vm, gw := newTestVM(t)
	gw.On("ListTasks", mock.Anything).Return(sampleTasks(), nil).Once()
	require.NoError(t, vm.Mount(context.Background()))

	require.NoError(t, vm.SetPriorityFilter("HIGH"))
	assert.Equal(t, []string{"a", "c"}, visibleIDs(vm.VisibleTasks()))

	vm.ToggleTodayOnly()
	assert.Equal(t, []string{"a"}, visibleIDs(vm.VisibleTasks()))

	require.NoError(t, vm.SetStatusFilter("done"))
	snap := vm.Snapshot()
	assert.Empty(t, snap.Visible)
	assert.Equal(t, tasklist.EmptyNoMatches, snap.Empty)
	assert.Len(t, snap.Tasks, 3, "filters never drop the underlying list")

	vm.SetTodayOnly(false)
	require.NoError(t, vm.SetPriorityFilter("all"))
	assert.Equal(t, []string{"b"}, visibleIDs(vm.VisibleTasks()))
}

func TestInvalidFilterKeepsPrevious(t *testing.T) {
	vm, _ := newTestVM(t)

	require.NoError(t, vm.SetStatusFilter("in-progress"))
	err := vm.SetStatusFilter("archived")
	assert.ErrorIs(t, err, tasklist.ErrInvalidFilter)
	assert.ErrorIs(t, vm.SetPriorityFilter("urgent"), tasklist.ErrInvalidFilter)

	f := vm.Snapshot().Filter
	assert.Equal(t, tasklist.StatusFilter("in-progress"), f.Status)
	assert.Equal(t, tasklist.PriorityAll, f.Priority)
}

func TestRefreshFailure(t *testing.T) {
	vm, gw := newTestVM(t)
	boom := task.NewError("ListTasks", task.KindNetwork, 0, nil, errors.New("connection refused"))
	gw.On("ListTasks", mock.Anything).Return(nil, boom).Once()

	err := vm.Refresh(context.Background())
	assert.ErrorIs(t, err, task.ErrNetwork)

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateFailed, snap.State)
	assert.ErrorIs(t, snap.Err, task.ErrNetwork)
	assert.Equal(t, tasklist.EmptyNone, snap.Empty)

	// Retry recovers.
	gw.On("ListTasks", mock.Anything).Return(sampleTasks(), nil).Once()
	require.NoError(t, vm.Refresh(context.Background()))
	snap = vm.Snapshot()
	assert.Equal(t, viewstate.StateReady, snap.State)
	assert.NoError(t, snap.Err)
}

func TestCreateSuccessRefetches(t *testing.T) {
	vm, gw := newTestVM(t)
	ctx := context.Background()
	draft := model.NewDraft("Report", testNow)

	created := model.Task{ID: "new", Name: "Report", Status: model.StatusNotStarted, Priority: model.PriorityMedium}
	gw.On("ListTasks", mock.Anything).Return([]model.Task{}, nil).Once()
	gw.On("CreateTask", mock.Anything, draft).Return(created, nil).Once()
	gw.On("ListTasks", mock.Anything).Return([]model.Task{created}, nil).Once()

	require.NoError(t, vm.Mount(ctx))
	require.NoError(t, vm.Create(ctx, draft))

	snap := vm.Snapshot()
	assert.Equal(t, []string{"new"}, visibleIDs(snap.Tasks))
	require.NotNil(t, snap.Notice)
	assert.Equal(t, viewstate.NoticeSuccess, snap.Notice.Kind)
	assert.Contains(t, snap.Notice.Message, "Report")

	vm.DismissNotice()
	assert.Nil(t, vm.Snapshot().Notice)
}

func TestFailedMutationKeepsList(t *testing.T) {
	vm, gw := newTestVM(t)
	ctx := context.Background()
	gw.On("ListTasks", mock.Anything).Return(sampleTasks(), nil).Once()
	require.NoError(t, vm.Mount(ctx))

	rejected := task.NewError("CreateTask", task.KindValidation, 0, nil, model.ValidationErrors{{Field: "Name", Rule: "required"}})
	gw.On("CreateTask", mock.Anything, mock.Anything).Return(model.Task{}, rejected).Once()
	gw.On("DeleteTask", mock.Anything, "a").Return(task.NewError("DeleteTask", task.KindServer, 500, nil, errors.New("boom"))).Once()

	err := vm.Create(ctx, model.NewDraft("", time.Time{}))
	assert.ErrorIs(t, err, task.ErrValidation)
	err = vm.Delete(ctx, "a")
	assert.ErrorIs(t, err, task.ErrServer)

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateReady, snap.State)
	assert.Equal(t, []string{"a", "b", "c"}, visibleIDs(snap.Tasks))
	require.NotNil(t, snap.Notice)
	assert.True(t, snap.Notice.IsError())
	gw.AssertNumberOfCalls(t, "ListTasks", 1)
}

func TestDeleteAndCommentRefetch(t *testing.T) {
	vm, gw := newTestVM(t)
	ctx := context.Background()
	tasks := sampleTasks()

	gw.On("DeleteTask", mock.Anything, "b").Return(nil).Once()
	gw.On("AddComment", mock.Anything, "a", "done soon").Return(tasks[0], nil).Once()
	gw.On("UpdateTask", mock.Anything, "c", mock.Anything).Return(tasks[2], nil).Once()
	gw.On("ListTasks", mock.Anything).Return(tasks, nil).Times(3)

	require.NoError(t, vm.Delete(ctx, "b"))
	require.NoError(t, vm.AddComment(ctx, "a", "done soon"))
	done := model.StatusDone
	require.NoError(t, vm.Update(ctx, "c", model.Patch{Status: &done}))

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateReady, snap.State)
	assert.Equal(t, `Task "Read" updated.`, snap.Notice.Message)
}

func TestStaleRefreshIsDiscarded(t *testing.T) {
	vm, gw := newTestVM(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	stale := []model.Task{{ID: "stale", Status: model.StatusDone, Priority: model.PriorityLow}}
	fresh := []model.Task{{ID: "fresh", Status: model.StatusDone, Priority: model.PriorityLow}}

	gw.On("ListTasks", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(stale, nil).Once()
	gw.On("ListTasks", mock.Anything).Return(fresh, nil).Once()

	done := make(chan error, 1)
	go func() { done <- vm.Refresh(ctx) }()
	<-started

	require.NoError(t, vm.Refresh(ctx))
	close(release)
	require.NoError(t, <-done)

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateReady, snap.State)
	assert.Equal(t, []string{"fresh"}, visibleIDs(snap.Tasks))
}

func TestCloseDropsPendingResults(t *testing.T) {
	vm, gw := newTestVM(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	gw.On("ListTasks", mock.Anything).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(sampleTasks(), nil).Once()

	done := make(chan error, 1)
	go func() { done <- vm.Mount(ctx) }()
	<-started
	vm.Close()
	close(release)
	<-done

	snap := vm.Snapshot()
	assert.Equal(t, viewstate.StateLoading, snap.State)
	assert.Empty(t, snap.Tasks)

	assert.ErrorIs(t, vm.Refresh(ctx), tasklist.ErrClosed)
	assert.ErrorIs(t, vm.Create(ctx, model.NewDraft("x", time.Time{})), tasklist.ErrClosed)
}

func TestSnapshotIsACopy(t *testing.T) {
	vm, gw := newTestVM(t)
	gw.On("ListTasks", mock.Anything).Return(sampleTasks(), nil).Once()
	require.NoError(t, vm.Mount(context.Background()))

	snap := vm.Snapshot()
	snap.Tasks[0].Name = "mutated"
	snap.Visible[0].Tags = append(snap.Visible[0].Tags, "x")

	again := vm.Snapshot()
	assert.Equal(t, "Report", again.Tasks[0].Name)
	assert.Empty(t, again.Visible[0].Tags)
}
