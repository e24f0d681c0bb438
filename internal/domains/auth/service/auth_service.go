package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"repomovil-backend/internal/domains/auth"
	"repomovil-backend/pkg/jwt"
	"repomovil-backend/pkg/logger"
)

type authServiceImpl struct {
	repository auth.Repository
	jwtManager *jwt.Manager
}

func NewAuthService(repo auth.Repository, jwtManager *jwt.Manager) auth.Service {
	return &authServiceImpl{
		repository: repo,
		jwtManager: jwtManager,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req *auth.LoginReq) (string, *auth.UserInfo, error) {
	user, err := s.repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return "", nil, auth.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Sign(user.ID, user.Email, user.Role)
	if err != nil {
		logger.Error("auth Login: token signing failed", err)
		return "", nil, fmt.Errorf("login: failed to sign token")
	}

	return token, &auth.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
