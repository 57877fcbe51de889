package middleware

import (
	"net/http"

	"posterdeck-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery converts a handler panic into the standard error envelope
// instead of a dropped connection. The panic value and the route are
// logged; the client only learns that something broke.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("panic recovered")

				response.ErrorResponse(c, http.StatusInternalServerError, "SYS_001", "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
