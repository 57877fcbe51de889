package poster

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound = errors.New("poster not found")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		var vErr validation.Errors
		if errors.As(err, &vErr) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
