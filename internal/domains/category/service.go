package category

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListPublic(ctx context.Context) ([]CategoryWithItems, error)
	Create(ctx context.Context, req *CreateCategoryReq) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
