package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.Sign(userID, "admin@example.com", "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	manager := NewManager("secret-a", time.Hour)
	other := NewManager("secret-b", time.Hour)

	token, err := manager.Sign(uuid.New(), "admin@example.com", "ADMIN")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.Sign(uuid.New(), "admin@example.com", "ADMIN")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = manager.Verify(tampered)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Sign(uuid.New(), "admin@example.com", "ADMIN")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}
