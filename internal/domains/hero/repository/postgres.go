package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repomovil-backend/internal/domains/hero"
	"repomovil-backend/pkg/logger"
)

const slideColumns = `id, title, subtitle, image_url, link_url, "order", is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) hero.Repository {
	return &postgresRepository{pool: pool}
}

func scanSlide(row pgx.Row) (*hero.Slide, error) {
	entity := &hero.Slide{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Subtitle,
		&entity.ImageURL,
		&entity.LinkURL,
		&entity.Order,
		&entity.IsActive,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *hero.Slide) (*hero.Slide, error) {
	const query = `
		INSERT INTO hero_slides (
			id, title, subtitle, image_url, link_url,
			"order", is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + slideColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Subtitle,
		entity.ImageURL,
		entity.LinkURL,
		entity.Order,
		entity.IsActive,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanSlide(row)
	if err != nil {
		logger.Error("hero Create: database error", err)
		return nil, fmt.Errorf("failed to create hero slide: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*hero.Slide, error) {
	const query = `SELECT ` + slideColumns + ` FROM hero_slides WHERE id = $1`

	entity, err := scanSlide(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrSlideNotFound
		}
		logger.Error("hero GetByID: database error", err)
		return nil, fmt.Errorf("failed to get hero slide: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]hero.Slide, error) {
	const query = `
		SELECT ` + slideColumns + `
		FROM hero_slides
		WHERE is_active = true
		ORDER BY "order" ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("hero ListActive: query failed", err)
		return nil, fmt.Errorf("failed to list hero slides: %w", err)
	}
	defer rows.Close()

	entities := make([]hero.Slide, 0)
	for rows.Next() {
		entity, err := scanSlide(rows)
		if err != nil {
			logger.Error("hero ListActive: scan error", err)
			return nil, fmt.Errorf("failed to scan hero slide: %w", err)
		}
		entities = append(entities, *entity)
	}

	if err = rows.Err(); err != nil {
		logger.Error("hero ListActive: rows error", err)
		return nil, fmt.Errorf("failed to list hero slides: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *hero.Slide) (*hero.Slide, error) {
	const query = `
		UPDATE hero_slides
		SET title = $1, subtitle = $2, image_url = $3, link_url = $4,
		    "order" = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + slideColumns

	row := r.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Subtitle,
		entity.ImageURL,
		entity.LinkURL,
		entity.Order,
		entity.IsActive,
		entity.UpdatedAt,
		entity.ID,
	)

	updated, err := scanSlide(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hero.ErrSlideNotFound
		}
		logger.Error("hero Update: database error", err)
		return nil, fmt.Errorf("failed to update hero slide: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM hero_slides WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("hero Delete: database error", err)
		return fmt.Errorf("failed to delete hero slide: %w", err)
	}

	if result.RowsAffected() == 0 {
		return hero.ErrSlideNotFound
	}

	return nil
}
