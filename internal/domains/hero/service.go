package hero

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	// ListPublic returns active slides, order ASC, with image URLs made
	// absolute.
	ListPublic(ctx context.Context) ([]Slide, error)
	Create(ctx context.Context, req *CreateSlideReq) (*Slide, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateSlideReq) (*Slide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
