package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "taskboard/internal/backend/delivery/http"
	taskRepo "taskboard/internal/backend/repository/memory"
	taskUC "taskboard/internal/backend/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := taskRepo.New(srv.l)

	// 2. UseCase
	uc := taskUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /tasks
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
