package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"repomovil-backend/internal/domains/auth"
	"repomovil-backend/pkg/jwt"
)

type fakeAuthRepo struct {
	users map[string]*auth.AdminUser
}

func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*auth.AdminUser, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, auth.ErrUserNotFound
}

func (f *fakeAuthRepo) Upsert(ctx context.Context, user *auth.AdminUser) (*auth.AdminUser, error) {
	f.users[user.Email] = user
	return user, nil
}

func setupAuthService(t *testing.T) (auth.Service, *jwt.Manager, uuid.UUID) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	repo := &fakeAuthRepo{users: map[string]*auth.AdminUser{
		"admin@repomovil.com": {
			ID:           userID,
			Email:        "admin@repomovil.com",
			PasswordHash: string(hash),
			Role:         "ADMIN",
		},
	}}

	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(repo, manager), manager, userID
}

func TestLoginSuccess(t *testing.T) {
	svc, manager, userID := setupAuthService(t)

	token, user, err := svc.Login(context.Background(), &auth.LoginReq{
		Email:    "admin@repomovil.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ADMIN", user.Role)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@repomovil.com", claims.Email)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), &auth.LoginReq{
		Email:    "nobody@repomovil.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), &auth.LoginReq{
		Email:    "admin@repomovil.com",
		Password: "wrong-password",
	})
	// Same error as unknown email, so the response can't be used to probe
	// which accounts exist.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
