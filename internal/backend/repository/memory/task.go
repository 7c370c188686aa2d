package memory

import (
	"context"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "taskboard/internal/backend/repository"
	"taskboard/internal/model"
)

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	ProjectID   string             `bson:"projectId"`
	Description string             `bson:"description"`
	CreatedDate time.Time          `bson:"createdDate"`
	DueDate     *time.Time         `bson:"dueDate,omitempty"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	Comments    []string           `bson:"comments"`
	Tags        []string           `bson:"tags"`
}

// CreateTask assigns a fresh ObjectID and creation date, then stores the task.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	doc := taskDocument{
		ID:          primitive.NewObjectID(),
		Name:        opt.Name,
		ProjectID:   string(opt.ProjectID),
		Description: opt.Description,
		CreatedDate: r.now().UTC().Truncate(time.Millisecond),
		DueDate:     optionalTime(opt.DueDate),
		Priority:    string(opt.Priority),
		Status:      string(opt.Status),
		Comments:    nonNil(opt.Comments),
		Tags:        nonNil(opt.Tags),
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	id := doc.ID.Hex()
	r.mu.Lock()
	r.docs[id] = raw
	r.order = append(r.order, id)
	r.mu.Unlock()

	return toTask(doc), nil
}

// GetOneTask returns a zero task when the id is unknown or not an ObjectID.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if _, err := primitive.ObjectIDFromHex(opt.ID); err != nil {
		return model.Task{}, nil
	}

	r.mu.RLock()
	raw, ok := r.docs[opt.ID]
	r.mu.RUnlock()
	if !ok {
		return model.Task{}, nil
	}

	doc, err := r.decode(ctx, raw)
	if err != nil {
		return model.Task{}, err
	}
	return toTask(doc), nil
}

// ListTasks returns matching tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	raws := make([][]byte, 0, len(r.order))
	for _, id := range r.order {
		raws = append(raws, r.docs[id])
	}
	r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(raws))
	for _, raw := range raws {
		doc, err := r.decode(ctx, raw)
		if err != nil {
			return nil, err
		}
		t := toTask(doc)
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// UpdateTask overwrites every mutable field; id and creation date are kept.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.docs[opt.ID]
	if !ok {
		r.l.Errorf(ctx, "%s: task %s vanished", r.dsn("UpdateTask"), opt.ID)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	doc, err := r.decode(ctx, raw)
	if err != nil {
		return model.Task{}, repo.ErrFailedToUpdate
	}

	doc.Name = opt.Name
	doc.ProjectID = string(opt.ProjectID)
	doc.Description = opt.Description
	doc.DueDate = optionalTime(opt.DueDate)
	doc.Priority = string(opt.Priority)
	doc.Status = string(opt.Status)
	doc.Comments = nonNil(opt.Comments)
	doc.Tags = nonNil(opt.Tags)

	updated, err := bson.Marshal(doc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	r.docs[opt.ID] = updated
	return toTask(doc), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		r.l.Errorf(ctx, "%s: task %s vanished", r.dsn("DeleteTask"), id)
		return repo.ErrFailedToDelete
	}
	delete(r.docs, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

func (r *implRepository) decode(ctx context.Context, raw []byte) (taskDocument, error) {
	var doc taskDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("decode"), err)
		return taskDocument{}, err
	}
	return doc, nil
}

func toTask(doc taskDocument) model.Task {
	t := model.Task{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		ProjectID:   model.ProjectID(doc.ProjectID),
		CreatedDate: doc.CreatedDate,
		Priority:    model.Priority(doc.Priority),
		Status:      model.Status(doc.Status),
		Comments:    nonNil(doc.Comments),
		Tags:        nonNil(doc.Tags),
	}
	if doc.DueDate != nil {
		t.DueDate = *doc.DueDate
	}
	return t
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
