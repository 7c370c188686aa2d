package usecase

import (
	"taskboard/internal/backend/repository"
	"taskboard/pkg/log"
)

// implUseCase is the private implementation of backend.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new backend UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
