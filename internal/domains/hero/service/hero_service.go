package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repomovil-backend/internal/domains/hero"
	"repomovil-backend/internal/shared/utils"
	"repomovil-backend/pkg/cache"
	"repomovil-backend/pkg/logger"
)

const (
	listCacheKey = "public:hero"
	listCacheTTL = 60 * time.Second
)

type heroServiceImpl struct {
	repository hero.Repository
	cache      cache.Cache
	baseURL    string
}

func NewHeroService(repo hero.Repository, cache cache.Cache, baseURL string) hero.Service {
	return &heroServiceImpl{
		repository: repo,
		cache:      cache,
		baseURL:    baseURL,
	}
}

func (s *heroServiceImpl) ListPublic(ctx context.Context) ([]hero.Slide, error) {
	var cached []hero.Slide
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		logger.Warn("hero: cache read failed", err)
	}
	if found {
		return cached, nil
	}

	slides, err := s.repository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	for i := range slides {
		slides[i].ImageURL = utils.ToPublicURL(s.baseURL, slides[i].ImageURL)
	}

	if err := s.cache.Set(ctx, listCacheKey, slides, listCacheTTL); err != nil {
		logger.Warn("hero: cache write failed", err)
	}

	return slides, nil
}

func (s *heroServiceImpl) Create(ctx context.Context, req *hero.CreateSlideReq) (*hero.Slide, error) {
	now := time.Now()
	entity := &hero.Slide{
		ID:        uuid.New(),
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		Order:     req.Order,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

func (s *heroServiceImpl) Update(ctx context.Context, id uuid.UUID, req *hero.UpdateSlideReq) (*hero.Slide, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entity.Title = req.Title
	}
	if req.Subtitle != nil {
		entity.Subtitle = req.Subtitle
	}
	if req.ImageURL != nil {
		entity.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		entity.LinkURL = req.LinkURL
	}
	if req.Order != nil {
		entity.Order = *req.Order
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}
	entity.UpdatedAt = time.Now()

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *heroServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *heroServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Warn("hero: cache invalidation failed", err)
	}
}
