package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repomovil-backend/internal/domains/item"
	infracache "repomovil-backend/internal/infrastructure/cache"
)

type fakeItemRepo struct {
	byID    map[uuid.UUID]*item.Item
	created *item.Item
	updated *item.Item
	recent  []item.ItemWithCategory
	matches []item.ItemWithCategory
	lastQ   string
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[uuid.UUID]*item.Item{}}
}

func (f *fakeItemRepo) Create(ctx context.Context, entity *item.Item) (*item.Item, error) {
	f.created = entity
	return entity, nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	if entity, ok := f.byID[id]; ok {
		clone := *entity
		return &clone, nil
	}
	return nil, item.ErrItemNotFound
}

func (f *fakeItemRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]item.Item, error) {
	return nil, nil
}

func (f *fakeItemRepo) Search(ctx context.Context, q string, limit int) ([]item.ItemWithCategory, error) {
	f.lastQ = q
	return f.matches, nil
}

func (f *fakeItemRepo) Recent(ctx context.Context, limit int) ([]item.ItemWithCategory, error) {
	return f.recent, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, entity *item.Item) (*item.Item, error) {
	f.updated = entity
	return entity, nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func TestCreateDetectsTypeWhenOmitted(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, infracache.Noop{})

	created, err := svc.Create(context.Background(), &item.CreateItemReq{
		CategoryID: uuid.New(),
		Title:      "Video",
		URL:        "https://youtu.be/abc",
	})
	require.NoError(t, err)

	assert.Equal(t, item.TypeYouTube, created.Type)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateKeepsExplicitType(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, infracache.Noop{})

	created, err := svc.Create(context.Background(), &item.CreateItemReq{
		CategoryID: uuid.New(),
		Title:      "Misfiled video",
		URL:        "https://youtu.be/abc",
		Type:       "OTHER",
	})
	require.NoError(t, err)

	assert.Equal(t, item.TypeOther, created.Type)
}

func TestUpdateTypeIsSticky(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo, infracache.Noop{})

	id := uuid.New()
	repo.byID[id] = &item.Item{
		ID:         id,
		CategoryID: uuid.New(),
		Type:       item.TypeYouTube,
		Title:      "Video",
		URL:        "https://youtu.be/abc",
		IsActive:   true,
	}

	// A new URL without an explicit type keeps the stored type.
	driveURL := "https://drive.google.com/file/d/xyz"
	updated, err := svc.Update(context.Background(), id, &item.UpdateItemReq{URL: &driveURL})
	require.NoError(t, err)
	assert.Equal(t, item.TypeYouTube, updated.Type)
	assert.Equal(t, driveURL, updated.URL)

	// An explicit type wins.
	newType := "DRIVE"
	updated, err = svc.Update(context.Background(), id, &item.UpdateItemReq{Type: &newType})
	require.NoError(t, err)
	assert.Equal(t, item.TypeDrive, updated.Type)
}

func TestUpdateUnknownItem(t *testing.T) {
	svc := NewItemService(newFakeItemRepo(), infracache.Noop{})

	_, err := svc.Update(context.Background(), uuid.New(), &item.UpdateItemReq{})
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}

func TestSearchFallsBackToRecent(t *testing.T) {
	repo := newFakeItemRepo()
	repo.recent = []item.ItemWithCategory{{Item: item.Item{Title: "newest"}}}
	repo.matches = []item.ItemWithCategory{{Item: item.Item{Title: "match"}}}
	svc := NewItemService(repo, infracache.Noop{})

	for _, q := range []string{"", "   ", "\t"} {
		results, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "newest", results[0].Title)
	}

	results, err := svc.Search(context.Background(), "  golang  ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "match", results[0].Title)
	assert.Equal(t, "golang", repo.lastQ, "query should be trimmed")
}
