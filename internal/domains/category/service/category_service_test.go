package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repomovil-backend/internal/domains/category"
	infracache "repomovil-backend/internal/infrastructure/cache"
)

type fakeCategoryRepo struct {
	byID    map[uuid.UUID]*category.Category
	listing []category.CategoryWithItems
	updated *category.Category
	deleted []uuid.UUID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[uuid.UUID]*category.Category{}}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	f.byID[entity.ID] = entity
	return entity, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	if entity, ok := f.byID[id]; ok {
		clone := *entity
		return &clone, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) ListPublic(ctx context.Context, itemsPerCategory int) ([]category.CategoryWithItems, error) {
	return f.listing, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	f.updated = entity
	f.byID[entity.ID] = entity
	return entity, nil
}

func (f *fakeCategoryRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return category.ErrCategoryNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func TestUpdateMergesProvidedFieldsOnly(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, infracache.Noop{}, "http://localhost:4000")

	desc := "old description"
	id := uuid.New()
	repo.byID[id] = &category.Category{
		ID:          id,
		Name:        "Old name",
		Description: &desc,
		IsActive:    true,
	}

	name := "New name"
	updated, err := svc.Update(context.Background(), id, &category.UpdateCategoryReq{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New name", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "old description", *updated.Description)
	assert.True(t, updated.IsActive)
}

func TestUpdateUnknownCategory(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), infracache.Noop{}, "")

	_, err := svc.Update(context.Background(), uuid.New(), &category.UpdateCategoryReq{})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteUnknownCategory(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), infracache.Noop{}, "")

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestListPublicRewritesImageURLs(t *testing.T) {
	repo := newFakeCategoryRepo()
	relative := "/uploads/cat.png"
	absolute := "https://cdn.example.com/cat.png"
	repo.listing = []category.CategoryWithItems{
		{Category: category.Category{Name: "A", ImageURL: &relative}},
		{Category: category.Category{Name: "B", ImageURL: &absolute}},
		{Category: category.Category{Name: "C"}},
	}

	svc := NewCategoryService(repo, infracache.Noop{}, "http://localhost:4000")

	listing, err := svc.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, listing, 3)

	assert.Equal(t, "http://localhost:4000/uploads/cat.png", *listing[0].ImageURL)
	assert.Equal(t, absolute, *listing[1].ImageURL)
	assert.Nil(t, listing[2].ImageURL)
}
