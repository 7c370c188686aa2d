package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
	"taskboard/internal/task/repository"
	"taskboard/internal/task/repository/rest"
	pkgLog "taskboard/pkg/log"
)

// fakeBackend is a minimal in-memory task API speaking the {data: ...} envelope.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int
	tasks  map[string]map[string]any
	order  []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{tasks: map[string]map[string]any{}}
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		out := make([]map[string]any, 0, len(b.order))
		for _, id := range b.order {
			out = append(out, b.tasks[id])
		}
		writeData(w, http.StatusOK, out)
	})
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "bad body")
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		id := fmt.Sprintf("t%d", b.nextID)
		body["_id"] = id
		body["createdDate"] = "2024-03-10T09:00:00.000Z"
		b.tasks[id] = body
		b.order = append(b.order, id)
		writeData(w, http.StatusCreated, body)
	})
	mux.HandleFunc("GET /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		t, ok := b.tasks[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		writeData(w, http.StatusOK, t)
	})
	mux.HandleFunc("PUT /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		defer b.mu.Unlock()
		t, ok := b.tasks[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		for k, v := range body {
			t[k] = v
		}
		writeData(w, http.StatusOK, t)
	})
	mux.HandleFunc("DELETE /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := r.PathValue("id")
		if _, ok := b.tasks[id]; !ok {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		delete(b.tasks, id)
		for i, oid := range b.order {
			if oid == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
		writeData(w, http.StatusOK, map[string]string{"_id": id})
	})
	mux.HandleFunc("POST /tasks/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Comment string `json:"comment"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		defer b.mu.Unlock()
		t, ok := b.tasks[r.PathValue("id")]
		if !ok {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		comments, _ := t["comments"].([]any)
		t["comments"] = append(comments, body.Comment)
		writeData(w, http.StatusOK, t)
	})
	return mux
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error_code": status, "message": msg})
}

func newGateway(t *testing.T, h http.Handler) (repository.Gateway, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	client := rest.NewClient(repository.ClientOptions{BaseURL: ts.URL, Timeout: 2 * time.Second})
	return rest.New(client, pkgLog.NewNop()), ts
}

func TestGatewayLifecycle(t *testing.T) {
	gw, _ := newGateway(t, newFakeBackend().handler())
	ctx := context.Background()

	tasks, err := gw.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", tasks)
	}

	due := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	draft := model.NewDraft("Write report", due)
	draft.Priority = model.PriorityHigh
	created, err := gw.CreateTask(ctx, draft)
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if created.ID == "" || created.Name != "Write report" || created.Priority != model.PriorityHigh {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if !created.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", created.DueDate, due)
	}
	if created.Status != model.StatusNotStarted || created.ProjectID != model.ProjectPersonal {
		t.Errorf("defaults not applied: %+v", created)
	}

	tasks, err = gw.ListTasks(ctx)
	if err != nil || len(tasks) != 1 || tasks[0].ID != created.ID {
		t.Fatalf("ListTasks() = %v, %v", tasks, err)
	}

	status := model.StatusInProgress
	updated, err := gw.UpdateTask(ctx, created.ID, model.Patch{Status: &status})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if updated.Status != model.StatusInProgress || updated.Name != "Write report" {
		t.Errorf("UpdateTask() = %+v", updated)
	}

	commented, err := gw.AddComment(ctx, created.ID, "  first pass done ")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if len(commented.Comments) != 1 || commented.Comments[0] != "first pass done" {
		t.Errorf("Comments = %v", commented.Comments)
	}

	if err := gw.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	_, err = gw.GetTask(ctx, created.ID)
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("GetTask() after delete error = %v, want not-found", err)
	}
}

func TestGatewayCreateWithoutDueDateSendsNull(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeData(w, http.StatusCreated, map[string]any{
			"_id": "t1", "name": "x", "createdDate": "2024-03-10T09:00:00.000Z",
			"dueDate": nil, "priority": "Low", "status": "done",
		})
	})
	gw, _ := newGateway(t, mux)

	got, err := gw.CreateTask(context.Background(), model.Draft{Name: "x", Priority: model.PriorityLow, Status: model.StatusDone})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	v, present := body["dueDate"]
	if !present || v != nil {
		t.Errorf("dueDate in request = %v (present %v), want null", v, present)
	}
	if got.HasDueDate() {
		t.Errorf("expected no due date, got %v", got.DueDate)
	}
	if got.Comments == nil || got.Tags == nil {
		t.Errorf("expected empty non-nil slices")
	}
}

func TestGatewayValidationSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	ctx := context.Background()
	blank := "   "
	bad := model.Priority("urgent")

	tests := []struct {
		name string
		call func() error
	}{
		{"blank name", func() error {
			_, err := gw.CreateTask(ctx, model.NewDraft("  ", time.Time{}))
			return err
		}},
		{"invalid priority", func() error {
			d := model.NewDraft("ok", time.Time{})
			d.Priority = bad
			_, err := gw.CreateTask(ctx, d)
			return err
		}},
		{"blank patch name", func() error {
			_, err := gw.UpdateTask(ctx, "t1", model.Patch{Name: &blank})
			return err
		}},
		{"whitespace comment", func() error {
			_, err := gw.AddComment(ctx, "t1", " \t ")
			return err
		}},
		{"empty id", func() error {
			return gw.DeleteTask(ctx, "")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, task.ErrValidation) {
				t.Fatalf("error = %v, want validation", err)
			}
		})
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("backend was called %d times", n)
	}
}

func TestGatewayErrorMapping(t *testing.T) {
	validTask := `{"_id":"t1","name":"a","createdDate":"2024-03-10T09:00:00Z","priority":"low","status":"done"}`

	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    task.Kind
		wantPayload bool
	}{
		{"bad request", http.StatusBadRequest, `{"error_code":400,"message":"name is required"}`, task.KindValidation, true},
		{"unprocessable", http.StatusUnprocessableEntity, `{"errors":[{"field":"name"}]}`, task.KindValidation, true},
		{"not found", http.StatusNotFound, `{"error_code":404,"message":"task not found"}`, task.KindNotFound, true},
		{"rate limited", http.StatusTooManyRequests, `{"error_code":429,"message":"Too many requests"}`, task.KindUnknown, true},
		{"unauthorized empty", http.StatusUnauthorized, ``, task.KindUnknown, false},
		{"conflict", http.StatusConflict, `already exists`, task.KindUnknown, false},
		{"server error", http.StatusInternalServerError, `oops`, task.KindServer, false},
		{"bad gateway empty", http.StatusBadGateway, ``, task.KindServer, false},
		{"not json", http.StatusOK, `<html>`, task.KindMalformed, false},
		{"missing data", http.StatusOK, `{"result":{}}`, task.KindMalformed, false},
		{"null data", http.StatusOK, `{"data":null}`, task.KindMalformed, false},
		{"bad status", http.StatusOK, `{"data":{"_id":"t1","createdDate":"2024-03-10","priority":"Low","status":"archived"}}`, task.KindMalformed, false},
		{"bad created date", http.StatusOK, `{"data":{"_id":"t1","createdDate":"yesterday","priority":"Low","status":"done"}}`, task.KindMalformed, false},
		{"ok", http.StatusOK, `{"data":` + validTask + `}`, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			got, err := gw.GetTask(context.Background(), "t1")
			if tc.wantKind == "" {
				if err != nil {
					t.Fatalf("GetTask() error = %v", err)
				}
				if got.Priority != model.PriorityLow {
					t.Errorf("priority = %q, want normalized Low", got.Priority)
				}
				return
			}

			var gerr *task.GatewayError
			if !errors.As(err, &gerr) {
				t.Fatalf("error = %v, want *GatewayError", err)
			}
			if gerr.Kind != tc.wantKind {
				t.Errorf("Kind = %q, want %q", gerr.Kind, tc.wantKind)
			}
			if gerr.Op != "GetTask" {
				t.Errorf("Op = %q", gerr.Op)
			}
			if tc.wantPayload && len(gerr.Payload) == 0 {
				t.Errorf("expected payload to be preserved")
			}
			if !tc.wantPayload && len(gerr.Payload) != 0 {
				t.Errorf("unexpected payload %s", gerr.Payload)
			}
			if tc.status >= 400 && string(gerr.Body) != tc.body {
				t.Errorf("Body = %q, want %q", gerr.Body, tc.body)
			}
		})
	}
}

func TestGatewayServerUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	gw := rest.New(rest.NewClient(repository.ClientOptions{BaseURL: url, Timeout: time.Second}), pkgLog.NewNop())
	_, err := gw.ListTasks(context.Background())
	if !errors.Is(err, task.ErrNetwork) {
		t.Fatalf("ListTasks() error = %v, want network", err)
	}
	if task.KindOf(err) != task.KindNetwork {
		t.Errorf("KindOf = %q", task.KindOf(err))
	}
}

func TestGatewayMalformedListEntry(t *testing.T) {
	gw, _ := newGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"_id":"t1","createdDate":"2024-03-10","priority":"Low","status":"done"},{"name":"no id"}]}`))
	}))

	_, err := gw.ListTasks(context.Background())
	if !errors.Is(err, task.ErrMalformed) {
		t.Fatalf("ListTasks() error = %v, want malformed", err)
	}
}

func TestClientHeaders(t *testing.T) {
	var gotAuth, gotReqID, gotType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data":{"_id":"t1","createdDate":"2024-03-10","priority":"Low","status":"done","comments":["hi"]}}`))
	}))
	defer ts.Close()

	client := rest.NewClient(repository.ClientOptions{BaseURL: ts.URL + "/", AccessToken: "secret", Timeout: time.Second})
	ctx := pkgLog.WithRequestID(context.Background(), "req-42")
	if _, err := client.AddComment(ctx, "t1", rest.AddCommentRequest{Comment: "hi"}); err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReqID != "req-42" {
		t.Errorf("X-Request-ID = %q", gotReqID)
	}
	if !strings.HasPrefix(gotType, "application/json") {
		t.Errorf("Content-Type = %q", gotType)
	}
}

func TestClientGeneratesRequestID(t *testing.T) {
	var gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	client := rest.NewClient(repository.ClientOptions{BaseURL: ts.URL, Timeout: time.Second})
	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(gotReqID) != 36 {
		t.Errorf("X-Request-ID = %q, want uuid", gotReqID)
	}
}
