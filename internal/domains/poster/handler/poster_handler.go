package handler

import (
	"net/http"
	"strings"

	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type PosterHandler struct {
	service poster.Service
}

func NewPosterHandler(svc poster.Service) *PosterHandler {
	return &PosterHandler{service: svc}
}

// List - GET /api/posters
// All non-deleted posters, newest upload first.
func (h *PosterHandler) List(c *gin.Context) {
	posters, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "could not load posters")
		return
	}

	c.JSON(http.StatusOK, posters)
}

// Create - POST /api/posters
// Saves metadata only. The PDF bytes must already sit in blob storage;
// multipart bodies are rejected so nobody routes file uploads through
// this endpoint.
func (h *PosterHandler) Create(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		response.BadRequest(c, "send the file to the upload endpoint first, then post JSON metadata here")
		return
	}

	var req poster.CreatePosterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		statusCode := poster.GetHTTPStatusCode(err)
		if statusCode >= http.StatusInternalServerError {
			response.InternalServerError(c, "could not save poster")
			return
		}
		response.ErrorResponse(c, statusCode, "VALIDATION_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetByID - GET /api/posters/:id
func (h *PosterHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if poster.GetHTTPStatusCode(err) == http.StatusNotFound {
			response.NotFound(c, "poster not found")
			return
		}
		response.InternalServerError(c, "could not load poster")
		return
	}

	c.JSON(http.StatusOK, p)
}

// Delete - DELETE /api/posters/:id
// Soft delete; the record drops out of every read path immediately and
// is purged for good by the worker after the retention window.
func (h *PosterHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if poster.GetHTTPStatusCode(err) == http.StatusNotFound {
			response.NotFound(c, "poster not found")
			return
		}
		response.InternalServerError(c, "could not delete poster")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
