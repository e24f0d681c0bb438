package item

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type classifies where an item's URL points.
type Type string

const (
	TypeYouTube  Type = "YOUTUBE"
	TypeDrive    Type = "DRIVE"
	TypeOneDrive Type = "ONEDRIVE"
	TypeOther    Type = "OTHER"
)

// Types lists every valid item type, for validation.
var Types = []interface{}{
	string(TypeYouTube),
	string(TypeDrive),
	string(TypeOneDrive),
	string(TypeOther),
}

// DetectType classifies a URL by hostname substrings. Unknown hosts fall
// back to OTHER; the caller may always override with an explicit type.
func DetectType(rawURL string) Type {
	u := strings.ToLower(rawURL)
	switch {
	case strings.Contains(u, "youtube.com"), strings.Contains(u, "youtu.be"):
		return TypeYouTube
	case strings.Contains(u, "drive.google.com"):
		return TypeDrive
	case strings.Contains(u, "onedrive.live.com"),
		strings.Contains(u, "1drv.ms"),
		strings.Contains(u, "sharepoint.com"):
		return TypeOneDrive
	default:
		return TypeOther
	}
}

// Item is a typed link inside a category. Entities marshal directly as the
// wire representation.
type Item struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description,omitempty"`
	IconKey     *string   `json:"iconKey,omitempty"`
	IconColor   *string   `json:"iconColor,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryRef is the minimal category projection embedded in search results.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemWithCategory is an item joined with its owning category.
type ItemWithCategory struct {
	Item
	Category CategoryRef `json:"category"`
}
