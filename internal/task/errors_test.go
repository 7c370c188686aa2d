package task_test

import (
	"errors"
	"fmt"
	"testing"

	"taskboard/internal/task"
)

func TestGatewayErrorIs(t *testing.T) {
	err := task.NewError("GetTask", task.KindNotFound, 404, nil, errors.New("no such task"))
	wrapped := fmt.Errorf("load detail: %w", err)

	if !errors.Is(wrapped, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound to match")
	}
	if errors.Is(wrapped, task.ErrServer) {
		t.Errorf("ErrServer must not match a not-found error")
	}
	if task.KindOf(wrapped) != task.KindNotFound {
		t.Errorf("unexpected kind %q", task.KindOf(wrapped))
	}
	if task.KindOf(errors.New("plain")) != task.KindUnknown {
		t.Errorf("plain errors are unknown")
	}
	if got := err.Error(); got != "GetTask: not-found (status 404): no such task" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   task.Kind
	}{
		{status: 400, want: task.KindValidation},
		{status: 422, want: task.KindValidation},
		{status: 404, want: task.KindNotFound},
		{status: 401, want: task.KindUnknown},
		{status: 403, want: task.KindUnknown},
		{status: 409, want: task.KindUnknown},
		{status: 429, want: task.KindUnknown},
		{status: 500, want: task.KindServer},
		{status: 503, want: task.KindServer},
		{status: 302, want: task.KindUnknown},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			if got := task.KindForStatus(tt.status); got != tt.want {
				t.Errorf("KindForStatus(%d) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	err := task.NewError("ListTasks", task.KindNetwork, 0, nil, errors.New("dial tcp: refused"))
	if got := task.Message(err); got != "Cannot reach the task server." {
		t.Errorf("unexpected message %q", got)
	}

	tests := []struct {
		status int
		want   string
	}{
		{status: 400, want: "The task was rejected as invalid."},
		{status: 401, want: "The task server refused the request. Check the access token."},
		{status: 429, want: "Too many requests. Try again shortly."},
		{status: 409, want: "Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := task.NewError("ListTasks", task.KindForStatus(tt.status), tt.status, nil, errors.New("rejected"))
			if got := task.Message(err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
