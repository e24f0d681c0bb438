package middleware

import (
	"github.com/gin-gonic/gin"

	"repomovil-backend/internal/shared/response"
)

// RequireAdmin rejects authenticated users whose role is not ADMIN.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if role != "ADMIN" {
			response.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
