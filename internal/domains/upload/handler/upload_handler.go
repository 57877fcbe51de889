package handler

import (
	"errors"
	"io"
	"net/http"

	"posterdeck-backend/internal/domains/upload"
	"posterdeck-backend/internal/domains/upload/service"
	"posterdeck-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Decks are slides, not scans; 50MB covers every real poster seen so
// far while keeping a runaway upload from ballooning memory.
const maxUploadBytes = 50 << 20

type UploadHandler struct {
	service *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// UploadBlob - POST /api/upload-blob
// Phase one of the upload flow: multipart file in, public URL out.
// The caller then posts metadata to /api/posters with that URL.
func (h *UploadHandler) UploadBlob(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "multipart field 'file' is required")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the 50MB upload limit")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	if len(data) > maxUploadBytes {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the 50MB upload limit")
		return
	}

	url, info, err := h.service.Upload(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNotPDF):
			response.ErrorResponse(c, http.StatusBadRequest, "INVALID_PDF", "uploaded file is not a valid PDF")
		case errors.Is(err, upload.ErrStorage):
			response.BadGateway(c, "STORAGE_FAILED", "file could not be stored; it was NOT saved")
		default:
			response.InternalServerError(c, "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       url,
		"pageCount": info.PageCount,
	})
}

// IssueToken - POST /api/upload-token
// Hands out a presigned PUT URL for clients uploading directly to blob
// storage.
func (h *UploadHandler) IssueToken(c *gin.Context) {
	token, err := h.service.IssueToken(c.Request.Context())
	if err != nil {
		if errors.Is(err, upload.ErrStorage) {
			response.BadGateway(c, "STORAGE_FAILED", "could not issue upload token")
			return
		}
		response.InternalServerError(c, "could not issue upload token")
		return
	}

	c.JSON(http.StatusOK, token)
}
