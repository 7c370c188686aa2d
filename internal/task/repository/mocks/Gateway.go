package mocks

import (
	context "context"

	model "taskboard/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// Gateway is a mock type for the Gateway type
type Gateway struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, id, text
func (_m *Gateway) AddComment(ctx context.Context, id string, text string) (model.Task, error) {
	ret := _m.Called(ctx, id, text)

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, string, string) model.Task); ok {
		r0 = rf(ctx, id, text)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, id, text)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateTask provides a mock function with given fields: ctx, draft
func (_m *Gateway) CreateTask(ctx context.Context, draft model.Draft) (model.Task, error) {
	ret := _m.Called(ctx, draft)

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.Draft) model.Task); ok {
		r0 = rf(ctx, draft)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.Draft) error); ok {
		r1 = rf(ctx, draft)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteTask provides a mock function with given fields: ctx, id
func (_m *Gateway) DeleteTask(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetTask provides a mock function with given fields: ctx, id
func (_m *Gateway) GetTask(ctx context.Context, id string) (model.Task, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, string) model.Task); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListTasks provides a mock function with given fields: ctx
func (_m *Gateway) ListTasks(ctx context.Context) ([]model.Task, error) {
	ret := _m.Called(ctx)

	var r0 []model.Task
	if rf, ok := ret.Get(0).(func(context.Context) []model.Task); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateTask provides a mock function with given fields: ctx, id, patch
func (_m *Gateway) UpdateTask(ctx context.Context, id string, patch model.Patch) (model.Task, error) {
	ret := _m.Called(ctx, id, patch)

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, string, model.Patch) model.Task); ok {
		r0 = rf(ctx, id, patch)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, model.Patch) error); ok {
		r1 = rf(ctx, id, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewGateway creates a new instance of Gateway. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *Gateway {
	m := &Gateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
