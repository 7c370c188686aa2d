package rest

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the REST-backed task gateway.
func New(client *Client, l pkgLog.Logger) repository.Gateway {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	const op = "ListTasks"
	wires, err := r.client.ListTasks(ctx)
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks, err := model.ToCanonicalList(wires)
	if err != nil {
		r.l.Warnf(ctx, "rest repository: malformed task list: %v", err)
		return nil, task.NewError(op, task.KindMalformed, 0, nil, err)
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	const op = "GetTask"
	if err := requireID(op, id); err != nil {
		return model.Task{}, err
	}

	w, err := r.client.GetTask(ctx, id)
	if err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			r.l.Errorf(ctx, "rest repository: failed to get task %s: %v", id, err)
		}
		return model.Task{}, err
	}
	return r.toTask(ctx, op, w)
}

func (r *implRepository) CreateTask(ctx context.Context, draft model.Draft) (model.Task, error) {
	const op = "CreateTask"
	draft = draft.Normalize()
	if err := model.ValidateDraft(draft); err != nil {
		return model.Task{}, task.NewError(op, task.KindValidation, 0, nil, err)
	}

	w, err := r.client.CreateTask(ctx, toCreateRequest(draft))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	return r.toTask(ctx, op, w)
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, patch model.Patch) (model.Task, error) {
	const op = "UpdateTask"
	if err := requireID(op, id); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidatePatch(patch); err != nil {
		return model.Task{}, task.NewError(op, task.KindValidation, 0, nil, err)
	}

	w, err := r.client.UpdateTask(ctx, id, toUpdateRequest(patch))
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to update task %s: %v", id, err)
		return model.Task{}, err
	}
	return r.toTask(ctx, op, w)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := requireID("DeleteTask", id); err != nil {
		return err
	}
	if err := r.client.DeleteTask(ctx, id); err != nil {
		r.l.Errorf(ctx, "rest repository: failed to delete task %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) AddComment(ctx context.Context, id, text string) (model.Task, error) {
	const op = "AddComment"
	if err := requireID(op, id); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidateComment(text); err != nil {
		return model.Task{}, task.NewError(op, task.KindValidation, 0, nil, err)
	}

	w, err := r.client.AddComment(ctx, id, AddCommentRequest{Comment: strings.TrimSpace(text)})
	if err != nil {
		r.l.Errorf(ctx, "rest repository: failed to comment on task %s: %v", id, err)
		return model.Task{}, err
	}
	return r.toTask(ctx, op, w)
}

func (r *implRepository) toTask(ctx context.Context, op string, w *model.WireTask) (model.Task, error) {
	t, err := model.ToCanonical(*w)
	if err != nil {
		r.l.Warnf(ctx, "rest repository: %s returned a malformed task: %v", op, err)
		return model.Task{}, task.NewError(op, task.KindMalformed, 0, nil, err)
	}
	return t, nil
}

func requireID(op, id string) error {
	if strings.TrimSpace(id) == "" {
		return task.NewError(op, task.KindValidation, 0, nil, model.ValidationErrors{{Field: "id", Rule: "required"}})
	}
	return nil
}

func toCreateRequest(d model.Draft) CreateTaskRequest {
	return CreateTaskRequest{
		Name:        d.Name,
		ProjectID:   string(d.ProjectID),
		Description: d.Description,
		DueDate:     wireDate(d.DueDate),
		Priority:    string(d.Priority),
		Status:      string(d.Status),
		Comments:    nonNil(d.Comments),
		Tags:        nonNil(d.Tags),
	}
}

func toUpdateRequest(p model.Patch) UpdateTaskRequest {
	req := UpdateTaskRequest{
		Name:        p.Name,
		Description: p.Description,
	}
	if p.ProjectID != nil {
		v := string(*p.ProjectID)
		req.ProjectID = &v
	}
	if p.DueDate != nil {
		req.DueDate = wireDate(*p.DueDate)
	}
	if p.Priority != nil {
		v := string(*p.Priority)
		req.Priority = &v
	}
	if p.Status != nil {
		v := string(*p.Status)
		req.Status = &v
	}
	if p.Tags != nil {
		tags := nonNil(*p.Tags)
		req.Tags = &tags
	}
	return req
}

// wireDate returns nil for the zero time so it serializes as null.
func wireDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := model.FormatWireTime(t)
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
