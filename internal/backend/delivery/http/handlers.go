package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task. Omitted status defaults to "not-started" and projectId to "Personal".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201  {object} response.Resp{data=model.WireTask}
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns every task, oldest first, optionally narrowed by status and priority.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       status   query string false "Filter by status"
// @Param       priority query string false "Filter by priority"
// @Success     200 {object} response.Resp{data=[]model.WireTask}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp{data=model.WireTask}
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Absent fields keep their stored value; comments are never replaced.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp{data=model.WireTask}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp{data=deleteResp}
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{ID: id})
}

// AddComment godoc
// @Summary     Comment on a task
// @Description Appends one comment to the task's comment list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Task ID"
// @Param       body body commentReq true "Comment"
// @Success     200 {object} response.Resp{data=model.WireTask}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /tasks/{id}/comments [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddComment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(output))
}
