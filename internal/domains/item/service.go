package item

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateItemReq) (*Item, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateItemReq) (*Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)
	Search(ctx context.Context, q string) ([]ItemWithCategory, error)
}
