package http

import (
	"strings"
	"time"

	"taskboard/internal/backend"
	"taskboard/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string   `json:"name"        binding:"required,notblank"`
	ProjectID   string   `json:"projectId"   binding:"omitempty,project"`
	Description string   `json:"description"`
	DueDate     *string  `json:"dueDate"`
	Priority    string   `json:"priority"    binding:"required,priority"`
	Status      string   `json:"status"      binding:"omitempty,status"`
	Comments    []string `json:"comments"`
	Tags        []string `json:"tags"`

	dueDate time.Time
}

func (r *createReq) validate() error {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r createReq) toInput() backend.CreateTaskInput {
	// Enum fields passed binding, so parsing only canonicalizes case.
	project, _ := model.ParseProjectID(r.ProjectID)
	priority, _ := model.ParsePriority(r.Priority)
	status, _ := model.ParseStatus(r.Status)
	return backend.CreateTaskInput{
		Name:        r.Name,
		ProjectID:   project,
		Description: r.Description,
		DueDate:     r.dueDate,
		Priority:    priority,
		Status:      status,
		Comments:    r.Comments,
		Tags:        r.Tags,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,status"`
	Priority string `form:"priority" binding:"omitempty,priority"`
}

func (r listReq) toInput() backend.ListTasksInput {
	status, _ := model.ParseStatus(r.Status)
	priority, _ := model.ParsePriority(r.Priority)
	return backend.ListTasksInput{
		Status:   status,
		Priority: priority,
	}
}

// ---

type updateReq struct {
	ID          string    `json:"-"` // populated from URI param
	Name        *string   `json:"name"        binding:"omitnil,notblank"`
	ProjectID   *string   `json:"projectId"   binding:"omitnil,project"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Priority    *string   `json:"priority"    binding:"omitnil,priority"`
	Status      *string   `json:"status"      binding:"omitnil,status"`
	Tags        *[]string `json:"tags"`

	dueDate *time.Time
}

func (r *updateReq) validate() error {
	if r.DueDate == nil {
		return nil
	}
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = &due
	return nil
}

func (r updateReq) toInput() backend.UpdateTaskInput {
	in := backend.UpdateTaskInput{
		ID:          r.ID,
		Description: r.Description,
		DueDate:     r.dueDate,
		Tags:        r.Tags,
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		in.Name = &name
	}
	if r.ProjectID != nil {
		project, _ := model.ParseProjectID(*r.ProjectID)
		in.ProjectID = &project
	}
	if r.Priority != nil {
		p, _ := model.ParsePriority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s, _ := model.ParseStatus(*r.Status)
		in.Status = &s
	}
	return in
}

// ---

type commentReq struct {
	ID      string `json:"-"`
	Comment string `json:"comment" binding:"required,notblank"`
}

func (r commentReq) toInput() backend.AddCommentInput {
	return backend.AddCommentInput{
		ID:      r.ID,
		Comment: r.Comment,
	}
}

// parseDueDate accepts null, "" (both meaning no due date) or an ISO timestamp.
func parseDueDate(s *string) (time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, nil
	}
	due, err := model.ParseWireTime(strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, model.ValidationErrors{{Field: "dueDate", Rule: "datetime"}}
	}
	return due, nil
}

// --- Response DTOs ---

type listResp []model.WireTask

func (h *handler) newListResp(out backend.ListTasksOutput) listResp {
	tasks := make(listResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = model.ToWire(t)
	}
	return tasks
}

func (h *handler) newTaskResp(out backend.TaskOutput) model.WireTask {
	return model.ToWire(out.Task)
}

type deleteResp struct {
	ID string `json:"_id"`
}
