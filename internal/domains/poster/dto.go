package poster

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreatePosterReq is phase two of the upload flow: the bytes are
// already in blob storage, this saves the metadata record.
type CreatePosterReq struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	FileURL string `json:"fileUrl"`
	// PageCount is optional; the direct upload route reports it so the
	// client can bound comment pages before the document loads.
	PageCount int `json:"pageCount"`
}

func (r CreatePosterReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.FileURL,
			validation.Required.Error("fileUrl is required"),
			is.URL.Error("fileUrl must be a valid URL"),
		),
		validation.Field(&r.PageCount, validation.Min(0)),
	)
}
