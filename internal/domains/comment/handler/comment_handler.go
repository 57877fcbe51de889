package handler

import (
	"errors"
	"net/http"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(svc comment.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

// List - GET /api/comments?posterId=...
// posterId is required; the client filters further by page itself.
func (h *CommentHandler) List(c *gin.Context) {
	posterID := c.Query("posterId")
	if posterID == "" {
		response.BadRequest(c, "posterId query parameter is required")
		return
	}

	comments, err := h.service.ListByPoster(c.Request.Context(), posterID)
	if err != nil {
		response.InternalServerError(c, "could not load comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Create - POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req comment.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		statusCode := comment.GetHTTPStatusCode(err)
		switch statusCode {
		case http.StatusNotFound:
			response.NotFound(c, err.Error())
		case http.StatusBadRequest:
			response.ErrorResponse(c, statusCode, "VALIDATION_ERROR", err.Error())
		default:
			response.InternalServerError(c, "could not save comment")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Delete - DELETE /api/comments?id=...
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "id query parameter is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, comment.ErrInvalidID):
			response.BadRequest(c, "invalid comment id")
		case errors.Is(err, comment.ErrNotFound):
			response.NotFound(c, "comment not found")
		default:
			response.InternalServerError(c, "could not delete comment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
