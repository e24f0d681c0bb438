package hero

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"repomovil-backend/internal/shared/utils"
)

// CreateSlideReq is the body for POST /api/admin/hero. ImageURL accepts
// either an absolute URL or the /uploads path the upload endpoint returns.
type CreateSlideReq struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL string  `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl"`
	Order    int     `json:"order"`
}

func (r CreateSlideReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Subtitle, validation.Length(0, 500)),
		validation.Field(&r.ImageURL, validation.Required, utils.ImageRef),
		validation.Field(&r.LinkURL, utils.HTTPURL),
		validation.Field(&r.Order, validation.Min(0)),
	)
}

// UpdateSlideReq is the partial-update body for PUT /api/admin/hero/:id.
// nil means "leave unchanged".
type UpdateSlideReq struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"imageUrl"`
	LinkURL  *string `json:"linkUrl"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

func (r UpdateSlideReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 255)),
		validation.Field(&r.Subtitle, validation.Length(0, 500)),
		validation.Field(&r.ImageURL, validation.NilOrNotEmpty, utils.ImageRef),
		validation.Field(&r.LinkURL, utils.HTTPURL),
		validation.Field(&r.Order, validation.Min(0)),
	)
}
