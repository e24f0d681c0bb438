package auth

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	// Upsert inserts the user or, on an email conflict, refreshes the
	// password hash and role. Used by the seed binary.
	Upsert(ctx context.Context, user *AdminUser) (*AdminUser, error)
}
