package comment

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCommentReq struct {
	PosterID string `json:"posterId"`
	Page     int    `json:"page"`
	Text     string `json:"text"`
	Author   string `json:"author"`
}

func (r CreateCommentReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PosterID, validation.Required.Error("posterId is required")),
		validation.Field(&r.Page,
			validation.Required.Error("page is required"),
			validation.Min(1).Error("page must be a positive integer"),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.By(notBlank),
		),
	)
}

// notBlank rejects whitespace-only text that Required lets through.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "text must not be blank")
	}
	return nil
}
