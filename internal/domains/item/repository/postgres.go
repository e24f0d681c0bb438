package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"repomovil-backend/internal/domains/item"
	"repomovil-backend/pkg/logger"
)

const itemColumns = "id, category_id, type, title, url, description, icon_key, icon_color, is_active, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) item.Repository {
	return &postgresRepository{pool: pool}
}

func scanItem(row pgx.Row) (*item.Item, error) {
	entity := &item.Item{}
	err := row.Scan(
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
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *item.Item) (*item.Item, error) {
	const query = `
		INSERT INTO items (
			id, category_id, type, title, url,
			description, icon_key, icon_color, is_active,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + itemColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.CategoryID,
		entity.Type,
		entity.Title,
		entity.URL,
		entity.Description,
		entity.IconKey,
		entity.IconColor,
		entity.IsActive,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanItem(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "items_category_id_fkey" {
			return nil, item.ErrCategoryNotFound
		}
		logger.Error("item Create: database error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	entity, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		logger.Error("item GetByID: database error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]item.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE category_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		logger.Error("item ListByCategory: query failed", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *postgresRepository) Search(ctx context.Context, q string, limit int) ([]item.ItemWithCategory, error) {
	const query = `
		SELECT i.id, i.category_id, i.type, i.title, i.url,
		       i.description, i.icon_key, i.icon_color, i.is_active,
		       i.created_at, i.updated_at,
		       c.id, c.name
		FROM items i
		INNER JOIN categories c ON c.id = i.category_id
		WHERE i.is_active = true
		  AND (i.title ILIKE $1 OR i.description ILIKE $1 OR i.url ILIKE $1)
		ORDER BY i.created_at DESC
		LIMIT $2
	`

	pattern := "%" + escapeLike(q) + "%"
	rows, err := r.pool.Query(ctx, query, pattern, limit)
	if err != nil {
		logger.Error("item Search: query failed", err)
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	return collectItemsWithCategory(rows)
}

func (r *postgresRepository) Recent(ctx context.Context, limit int) ([]item.ItemWithCategory, error) {
	const query = `
		SELECT i.id, i.category_id, i.type, i.title, i.url,
		       i.description, i.icon_key, i.icon_color, i.is_active,
		       i.created_at, i.updated_at,
		       c.id, c.name
		FROM items i
		INNER JOIN categories c ON c.id = i.category_id
		WHERE i.is_active = true
		ORDER BY i.created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.Error("item Recent: query failed", err)
		return nil, fmt.Errorf("failed to list recent items: %w", err)
	}
	defer rows.Close()

	return collectItemsWithCategory(rows)
}

func (r *postgresRepository) Update(ctx context.Context, entity *item.Item) (*item.Item, error) {
	const query = `
		UPDATE items
		SET category_id = $1, type = $2, title = $3, url = $4,
		    description = $5, icon_key = $6, icon_color = $7,
		    is_active = $8, updated_at = $9
		WHERE id = $10
		RETURNING ` + itemColumns

	row := r.pool.QueryRow(ctx, query,
		entity.CategoryID,
		entity.Type,
		entity.Title,
		entity.URL,
		entity.Description,
		entity.IconKey,
		entity.IconColor,
		entity.IsActive,
		entity.UpdatedAt,
		entity.ID,
	)

	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "items_category_id_fkey" {
			return nil, item.ErrCategoryNotFound
		}
		logger.Error("item Update: database error", err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM items WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("item Delete: database error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return item.ErrItemNotFound
	}

	return nil
}

// escapeLike escapes ILIKE metacharacters so the query matches them
// literally instead of as wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func collectItems(rows pgx.Rows) ([]item.Item, error) {
	entities := make([]item.Item, 0)
	for rows.Next() {
		entity, err := scanItem(rows)
		if err != nil {
			logger.Error("item scan error", err)
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		entities = append(entities, *entity)
	}

	if err := rows.Err(); err != nil {
		logger.Error("item rows error", err)
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return entities, nil
}

func collectItemsWithCategory(rows pgx.Rows) ([]item.ItemWithCategory, error) {
	entities := make([]item.ItemWithCategory, 0)
	for rows.Next() {
		entity := item.ItemWithCategory{}
		err := rows.Scan(
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
			&entity.Category.ID,
			&entity.Category.Name,
		)
		if err != nil {
			logger.Error("item scan error", err)
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		logger.Error("item rows error", err)
		return nil, fmt.Errorf("failed to read items: %w", err)
	}

	return entities, nil
}
