package item

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Item) (*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// ListByCategory returns active items of a category, newest first.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)
	// Search matches q against title, description and url, case-insensitive.
	Search(ctx context.Context, q string, limit int) ([]ItemWithCategory, error)
	// Recent returns the newest active items across all categories.
	Recent(ctx context.Context, limit int) ([]ItemWithCategory, error)
	Update(ctx context.Context, entity *Item) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
