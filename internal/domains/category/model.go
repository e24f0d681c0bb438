package category

import (
	"time"

	"github.com/google/uuid"

	"repomovil-backend/internal/domains/item"
)

// Category groups items in the public directory. Entities marshal directly
// as the wire representation.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IconKey     *string   `json:"iconKey,omitempty"`
	IconColor   *string   `json:"iconColor,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryWithItems is the public directory shape: a category with its most
// recent active items embedded.
type CategoryWithItems struct {
	Category
	Items []item.Item `json:"items"`
}
