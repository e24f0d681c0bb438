package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repomovil-backend/internal/domains/category"
	"repomovil-backend/internal/domains/item"
	"repomovil-backend/pkg/database"
	"repomovil-backend/pkg/logger"
)

const categoryColumns = "id, name, description, icon_key, icon_color, image_url, is_active, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*category.Category, error) {
	entity := &category.Category{}
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.IconKey,
		&entity.IconColor,
		&entity.ImageURL,
		&entity.IsActive,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		INSERT INTO categories (
			id, name, description, icon_key, icon_color,
			image_url, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.IconKey,
		entity.IconColor,
		entity.ImageURL,
		entity.IsActive,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanCategory(row)
	if err != nil {
		logger.Error("category Create: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category GetByID: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return entity, nil
}

// ListPublic loads active categories and their newest active items in two
// queries, grouping in memory to avoid N+1.
func (r *postgresRepository) ListPublic(ctx context.Context, itemsPerCategory int) ([]category.CategoryWithItems, error) {
	const listQuery = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, listQuery)
	if err != nil {
		logger.Error("category ListPublic: query failed", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	result := make([]category.CategoryWithItems, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		entity, err := scanCategory(rows)
		if err != nil {
			logger.Error("category ListPublic: scan error", err)
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		index[entity.ID] = len(result)
		result = append(result, category.CategoryWithItems{
			Category: *entity,
			Items:    []item.Item{},
		})
	}
	if err = rows.Err(); err != nil {
		logger.Error("category ListPublic: rows error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if len(result) == 0 {
		return result, nil
	}

	// Top-N items per category via window function.
	const itemsQuery = `
		SELECT id, category_id, type, title, url,
		       description, icon_key, icon_color, is_active,
		       created_at, updated_at
		FROM (
			SELECT i.*,
			       ROW_NUMBER() OVER (
			           PARTITION BY i.category_id
			           ORDER BY i.created_at DESC
			       ) AS rn
			FROM items i
			WHERE i.is_active = true
		) ranked
		WHERE rn <= $1
		ORDER BY created_at DESC
	`

	itemRows, err := r.pool.Query(ctx, itemsQuery, itemsPerCategory)
	if err != nil {
		logger.Error("category ListPublic: items query failed", err)
		return nil, fmt.Errorf("failed to list category items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		entity := item.Item{}
		err := itemRows.Scan(
			&entity.ID,
			&entity.CategoryID,
			&entity.Type,
			&entity.Title,
			&entity.URL,
			&entity.Description,
			&entity.IconKey,
			&entity.IconColor,
			&entity.IsActive,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			logger.Error("category ListPublic: item scan error", err)
			return nil, fmt.Errorf("failed to scan category item: %w", err)
		}

		if pos, ok := index[entity.CategoryID]; ok {
			result[pos].Items = append(result[pos].Items, entity)
		}
	}
	if err = itemRows.Err(); err != nil {
		logger.Error("category ListPublic: item rows error", err)
		return nil, fmt.Errorf("failed to list category items: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		UPDATE categories
		SET name = $1, description = $2, icon_key = $3, icon_color = $4,
		    image_url = $5, is_active = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.Description,
		entity.IconKey,
		entity.IconColor,
		entity.ImageURL,
		entity.IsActive,
		entity.UpdatedAt,
		entity.ID,
	)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category Update: database error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

// DeleteCascade removes the category's items and the category itself in one
// transaction, so a failure leaves both tables untouched.
func (r *postgresRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM items WHERE category_id = $1`, id); err != nil {
			logger.Error("category DeleteCascade: delete items failed", err)
			return fmt.Errorf("failed to delete category items: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			logger.Error("category DeleteCascade: delete failed", err)
			return fmt.Errorf("failed to delete category: %w", err)
		}

		if result.RowsAffected() == 0 {
			return category.ErrCategoryNotFound
		}

		return nil
	})
}
