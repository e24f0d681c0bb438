package hero

import (
	"time"

	"github.com/google/uuid"
)

// Slide is one entry of the landing-page carousel. Entities marshal directly
// as the wire representation.
type Slide struct {
	ID        uuid.UUID `json:"id"`
	Title     *string   `json:"title,omitempty"`
	Subtitle  *string   `json:"subtitle,omitempty"`
	ImageURL  string    `json:"imageUrl"`
	LinkURL   *string   `json:"linkUrl,omitempty"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
