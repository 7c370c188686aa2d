package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
)

const maxBodyBytes = 4 << 20

// Client is the HTTP wrapper for the task REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new task API HTTP client.
func NewClient(opt repository.ClientOptions) *Client {
	return &Client{
		baseURL:     strings.TrimRight(opt.BaseURL, "/"),
		accessToken: opt.AccessToken,
		httpClient:  &http.Client{Timeout: opt.Timeout},
	}
}

// ListTasks fetches every task via GET /tasks.
func (c *Client) ListTasks(ctx context.Context) ([]model.WireTask, error) {
	const op = "ListTasks"
	raw, err := c.do(ctx, op, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}

	data, err := unwrapData(op, raw)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return []model.WireTask{}, nil
	}

	var tasks []model.WireTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, task.NewError(op, task.KindMalformed, 0, nil, fmt.Errorf("failed to decode task list: %w", err))
	}
	return tasks, nil
}

// GetTask fetches a single task via GET /tasks/{id}.
func (c *Client) GetTask(ctx context.Context, id string) (*model.WireTask, error) {
	const op = "GetTask"
	raw, err := c.do(ctx, op, http.MethodGet, taskPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeTask(op, raw)
}

// CreateTask creates a task via POST /tasks.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*model.WireTask, error) {
	const op = "CreateTask"
	raw, err := c.do(ctx, op, http.MethodPost, "/tasks", req)
	if err != nil {
		return nil, err
	}
	return decodeTask(op, raw)
}

// UpdateTask partially updates a task via PUT /tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*model.WireTask, error) {
	const op = "UpdateTask"
	raw, err := c.do(ctx, op, http.MethodPut, taskPath(id), req)
	if err != nil {
		return nil, err
	}
	return decodeTask(op, raw)
}

// DeleteTask removes a task via DELETE /tasks/{id}. The body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.do(ctx, "DeleteTask", http.MethodDelete, taskPath(id), nil)
	return err
}

// AddComment appends a comment via POST /tasks/{id}/comments.
func (c *Client) AddComment(ctx context.Context, id string, req AddCommentRequest) (*model.WireTask, error) {
	const op = "AddComment"
	raw, err := c.do(ctx, op, http.MethodPost, taskPath(id)+"/comments", req)
	if err != nil {
		return nil, err
	}
	return decodeTask(op, raw)
}

// do performs one request and returns the raw 2xx body. Every failure is
// normalised into a *task.GatewayError.
func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, task.NewError(op, task.KindUnknown, 0, nil, fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, task.NewError(op, task.KindUnknown, 0, nil, fmt.Errorf("failed to build request: %w", err))
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	requestID := pkgLog.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, task.NewError(op, task.KindNetwork, 0, nil, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, task.NewError(op, task.KindNetwork, resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload json.RawMessage
		cause := errors.New(http.StatusText(resp.StatusCode))
		if len(bytes.TrimSpace(raw)) > 0 {
			if json.Valid(raw) {
				payload = json.RawMessage(raw)
			}
			cause = fmt.Errorf("%s", truncate(string(raw), 256))
		}
		gerr := task.NewError(op, task.KindForStatus(resp.StatusCode), resp.StatusCode, payload, cause)
		if len(raw) > 0 {
			gerr.Body = raw
		}
		return nil, gerr
	}

	return raw, nil
}

// unwrapData extracts the "data" member of a success envelope.
func unwrapData(op string, raw []byte) (json.RawMessage, error) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, task.NewError(op, task.KindMalformed, 0, nil, fmt.Errorf("failed to decode envelope: %w", err))
	}
	if len(env.Data) == 0 {
		return nil, task.NewError(op, task.KindMalformed, 0, nil, errors.New("response has no data"))
	}
	return env.Data, nil
}

func decodeTask(op string, raw []byte) (*model.WireTask, error) {
	data, err := unwrapData(op, raw)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, task.NewError(op, task.KindMalformed, 0, nil, errors.New("response data is null"))
	}
	var w model.WireTask
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, task.NewError(op, task.KindMalformed, 0, nil, fmt.Errorf("failed to decode task: %w", err))
	}
	return &w, nil
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ---- Request types scoped to this package ----

// CreateTaskRequest is the body for POST /tasks.
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	ProjectID   string   `json:"projectId"`
	Description string   `json:"description"`
	DueDate     *string  `json:"dueDate"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	Comments    []string `json:"comments"`
	Tags        []string `json:"tags"`
}

// UpdateTaskRequest is the body for PUT /tasks/{id}. Omitted fields stay unchanged.
type UpdateTaskRequest struct {
	Name        *string   `json:"name,omitempty"`
	ProjectID   *string   `json:"projectId,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// AddCommentRequest is the body for POST /tasks/{id}/comments.
type AddCommentRequest struct {
	Comment string `json:"comment"`
}
