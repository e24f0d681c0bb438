package item

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"repomovil-backend/internal/shared/utils"
)

// CreateItemReq is the body for POST /api/admin/items. Type is optional:
// when omitted the detector classifies the URL.
type CreateItemReq struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	IconKey     *string   `json:"iconKey"`
	IconColor   *string   `json:"iconColor"`
}

func (r CreateItemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, utils.NonZeroUUID),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.URL, validation.Required, utils.HTTPURL),
		validation.Field(&r.Type, validation.In(Types...)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.IconKey, validation.Length(0, 64)),
		validation.Field(&r.IconColor, validation.Length(0, 32)),
	)
}

// UpdateItemReq is the partial-update body for PUT /api/admin/items/:id.
// nil means "leave unchanged". A new URL without an explicit type keeps the
// stored type.
type UpdateItemReq struct {
	CategoryID  *uuid.UUID `json:"categoryId"`
	Title       *string    `json:"title"`
	URL         *string    `json:"url"`
	Type        *string    `json:"type"`
	Description *string    `json:"description"`
	IconKey     *string    `json:"iconKey"`
	IconColor   *string    `json:"iconColor"`
	IsActive    *bool      `json:"isActive"`
}

func (r UpdateItemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID, utils.NonZeroUUID),
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.URL, validation.NilOrNotEmpty, utils.HTTPURL),
		validation.Field(&r.Type, validation.NilOrNotEmpty, validation.In(Types...)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.IconKey, validation.Length(0, 64)),
		validation.Field(&r.IconColor, validation.Length(0, 32)),
	)
}
