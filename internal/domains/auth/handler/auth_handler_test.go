package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repomovil-backend/internal/domains/auth"
)

type stubAuthService struct {
	token string
	user  *auth.UserInfo
	err   error
}

func (s *stubAuthService) Login(ctx context.Context, req *auth.LoginReq) (string, *auth.UserInfo, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func setupLoginRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", NewAuthHandler(svc).Login)
	return router
}

func postLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessEnvelope(t *testing.T) {
	user := &auth.UserInfo{ID: uuid.New(), Email: "admin@repomovil.com", Role: "ADMIN"}
	router := setupLoginRouter(&stubAuthService{token: "signed-token", user: user})

	w := postLogin(router, `{"email":"admin@repomovil.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK    bool          `json:"ok"`
		Token string        `json:"token"`
		User  auth.UserInfo `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, user.Email, body.User.Email)
	assert.Equal(t, "ADMIN", body.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupLoginRouter(&stubAuthService{err: auth.ErrInvalidCredentials})

	w := postLogin(router, `{"email":"admin@repomovil.com","password":"wrong-1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		OK      bool   `json:"ok"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "invalid credentials", body.Message)
}

func TestLoginValidationFailure(t *testing.T) {
	router := setupLoginRouter(&stubAuthService{})

	w := postLogin(router, `{"email":"not-an-email","password":"123"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		OK     bool              `json:"ok"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}
