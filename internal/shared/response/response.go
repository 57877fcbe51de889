package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error envelope returned on every failure path. Success payloads are
// written as plain records/arrays by the handlers; clients depend on
// those exact shapes.
type Response struct {
	Success bool   `json:"success"`
	Error   *Error `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func Conflict(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// BadGateway flags upstream failures (blob storage, document store)
// so clients can tell "my file never got stored" from a bad request.
func BadGateway(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusBadGateway, code, message)
}
