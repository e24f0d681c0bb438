package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"repomovil-backend/internal/shared/utils"
)

// CreateCategoryReq is the body for POST /api/admin/categories.
type CreateCategoryReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IconKey     *string `json:"iconKey"`
	IconColor   *string `json:"iconColor"`
	ImageURL    *string `json:"imageUrl"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.IconKey, validation.Length(0, 64)),
		validation.Field(&r.IconColor, validation.Length(0, 32)),
		validation.Field(&r.ImageURL, utils.ImageRef),
	)
}

// UpdateCategoryReq is the partial-update body for PUT /api/admin/categories/:id.
// nil means "leave unchanged".
type UpdateCategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IconKey     *string `json:"iconKey"`
	IconColor   *string `json:"iconColor"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.IconKey, validation.Length(0, 64)),
		validation.Field(&r.IconColor, validation.Length(0, 32)),
		validation.Field(&r.ImageURL, utils.ImageRef),
	)
}
