package memory

import (
	"fmt"
	"sync"
	"time"

	"taskboard/internal/backend/repository"
	"taskboard/pkg/log"
)

// implRepository keeps tasks as BSON documents keyed by ObjectID, the way
// the production document store does, so every read hands out a fresh copy.
type implRepository struct {
	l   log.Logger
	now func() time.Time

	mu    sync.RWMutex
	docs  map[string][]byte
	order []string // insertion order, which is also list order
}

// New creates an empty in-memory Repository for the task backend.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:    l,
		now:  time.Now,
		docs: make(map[string][]byte),
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("backend/repository/memory.%s", method)
}
