package category

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Category) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// ListPublic returns active categories, newest first, each carrying up to
	// itemsPerCategory of its most recent active items.
	ListPublic(ctx context.Context, itemsPerCategory int) ([]CategoryWithItems, error)
	Update(ctx context.Context, entity *Category) (*Category, error)
	// DeleteCascade removes the category and all of its items in a single
	// transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}
