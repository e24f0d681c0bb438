package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repomovil-backend/pkg/jwt"
)

func setupAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(manager), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(CtxEmail)})
	})
	return router
}

func TestAuthMissingHeader(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestAuthMalformedHeader(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	for _, header := range []string{"token-only", "Basic abc", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	expired := jwt.NewManager("secret", -time.Minute)
	token, err := expired.Sign(uuid.New(), "admin@example.com", "ADMIN")
	require.NoError(t, err)

	router := setupAuthRouter(jwt.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminForbidsOtherRoles(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	token, err := manager.Sign(uuid.New(), "user@example.com", "EDITOR")
	require.NoError(t, err)

	router := setupAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthAdminPasses(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	token, err := manager.Sign(uuid.New(), "admin@example.com", "ADMIN")
	require.NoError(t, err)

	router := setupAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
