package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"repomovil-backend/internal/domains/auth"
	"repomovil-backend/pkg/logger"
)

const userColumns = "id, email, password_hash, role, created_at, updated_at"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func scanUser(row pgx.Row) (*auth.AdminUser, error) {
	entity := &auth.AdminUser{}
	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Role,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	const query = `SELECT ` + userColumns + ` FROM admin_users WHERE email = $1`

	entity, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		logger.Error("auth GetByEmail: database error", err)
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, user *auth.AdminUser) (*auth.AdminUser, error) {
	const query = `
		INSERT INTO admin_users (id, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role          = EXCLUDED.role,
		    updated_at    = EXCLUDED.updated_at
		RETURNING ` + userColumns

	row := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)

	upserted, err := scanUser(row)
	if err != nil {
		logger.Error("auth Upsert: database error", err)
		return nil, fmt.Errorf("failed to upsert admin user: %w", err)
	}

	return upserted, nil
}
