package comment

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound       = errors.New("comment not found")
	ErrInvalidID      = errors.New("invalid comment id")
	ErrPosterNotFound = errors.New("poster not found")
	ErrPageOutOfRange = errors.New("page exceeds the poster's page count")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPosterNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrPageOutOfRange):
		return http.StatusBadRequest
	default:
		var vErr validation.Errors
		if errors.As(err, &vErr) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
