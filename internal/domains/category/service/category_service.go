package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"repomovil-backend/internal/domains/category"
	"repomovil-backend/internal/shared/utils"
	"repomovil-backend/pkg/cache"
	"repomovil-backend/pkg/logger"
)

const (
	itemsPerCategory = 5
	listCacheKey     = "public:categories"
	listCacheTTL     = 60 * time.Second
)

type categoryServiceImpl struct {
	repository category.Repository
	cache      cache.Cache
	baseURL    string
}

func NewCategoryService(repo category.Repository, cache cache.Cache, baseURL string) category.Service {
	return &categoryServiceImpl{
		repository: repo,
		cache:      cache,
		baseURL:    baseURL,
	}
}

// ListPublic serves the cached directory when present; a cache failure only
// costs the database round trip.
func (s *categoryServiceImpl) ListPublic(ctx context.Context) ([]category.CategoryWithItems, error) {
	var cached []category.CategoryWithItems
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		logger.Warn("category: cache read failed", err)
	}
	if found {
		return cached, nil
	}

	listing, err := s.repository.ListPublic(ctx, itemsPerCategory)
	if err != nil {
		return nil, err
	}

	for i := range listing {
		if listing[i].ImageURL != nil {
			absolute := utils.ToPublicURL(s.baseURL, *listing[i].ImageURL)
			listing[i].ImageURL = &absolute
		}
	}

	if err := s.cache.Set(ctx, listCacheKey, listing, listCacheTTL); err != nil {
		logger.Warn("category: cache write failed", err)
	}

	return listing, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.Category, error) {
	now := time.Now()
	entity := &category.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IconKey:     req.IconKey,
		IconColor:   req.IconColor,
		ImageURL:    req.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.Category, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if req.IconKey != nil {
		entity.IconKey = req.IconKey
	}
	if req.IconColor != nil {
		entity.IconColor = req.IconColor
	}
	if req.ImageURL != nil {
		entity.ImageURL = req.ImageURL
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

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Warn("category: cache invalidation failed", err)
	}
}
