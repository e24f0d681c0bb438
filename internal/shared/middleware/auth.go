package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"repomovil-backend/internal/shared/response"
	"repomovil-backend/pkg/jwt"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
	CtxRole   = "userRole"
)

// Auth verifies the Bearer token and loads the identity into the context.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}
