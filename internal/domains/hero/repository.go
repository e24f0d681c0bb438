package hero

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, entity *Slide) (*Slide, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Slide, error)
	// ListActive returns active slides in carousel order.
	ListActive(ctx context.Context) ([]Slide, error)
	Update(ctx context.Context, entity *Slide) (*Slide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
