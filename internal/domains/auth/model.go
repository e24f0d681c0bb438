package auth

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the backoffice account. It is never exposed through the API
// beyond the id/email/role projection in the login response.
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserInfo is the projection embedded in the login response.
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}
