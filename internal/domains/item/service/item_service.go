package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"repomovil-backend/internal/domains/item"
	"repomovil-backend/pkg/cache"
	"repomovil-backend/pkg/logger"
)

const (
	searchLimit = 50
	recentLimit = 10
)

type itemServiceImpl struct {
	repository item.Repository
	cache      cache.Cache
}

func NewItemService(repo item.Repository, cache cache.Cache) item.Service {
	return &itemServiceImpl{
		repository: repo,
		cache:      cache,
	}
}

func (s *itemServiceImpl) Create(ctx context.Context, req *item.CreateItemReq) (*item.Item, error) {
	itemType := item.Type(req.Type)
	if itemType == "" {
		itemType = item.DetectType(req.URL)
	}

	now := time.Now()
	entity := &item.Item{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Type:        itemType,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		IconKey:     req.IconKey,
		IconColor:   req.IconColor,
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

func (s *itemServiceImpl) Update(ctx context.Context, id uuid.UUID, req *item.UpdateItemReq) (*item.Item, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		entity.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.URL != nil {
		entity.URL = *req.URL
	}
	// Type stays as stored unless the client sends one explicitly; a changed
	// URL alone does not trigger re-detection.
	if req.Type != nil {
		entity.Type = item.Type(*req.Type)
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

func (s *itemServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *itemServiceImpl) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]item.Item, error) {
	return s.repository.ListByCategory(ctx, categoryID)
}

// Search falls back to the most recent items when q is empty or whitespace.
func (s *itemServiceImpl) Search(ctx context.Context, q string) ([]item.ItemWithCategory, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repository.Recent(ctx, recentLimit)
	}
	return s.repository.Search(ctx, q, searchLimit)
}

// invalidate drops the cached public directory; items are embedded in it.
func (s *itemServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, "public:categories"); err != nil {
		logger.Warn("item: cache invalidation failed", err)
	}
}
