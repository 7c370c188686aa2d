package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.bindError(err)
	}
	if err := req.validate(); err != nil {
		return req, h.bindError(err)
	}
	return req, nil
}

// processListReq binds and validates the list filters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, h.bindError(err)
	}
	return req, nil
}

// processUpdateReq binds and validates the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.bindError(err)
	}
	if err := req.validate(); err != nil {
		return req, h.bindError(err)
	}
	req.ID = c.Param("id")
	return req, nil
}

// processCommentReq binds the comment body + URI param.
func (h *handler) processCommentReq(c *gin.Context) (commentReq, error) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, h.bindError(err)
	}
	req.ID = c.Param("id")
	return req, nil
}
