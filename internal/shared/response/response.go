package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every payload carries an "ok" flag so clients can branch without
// inspecting the status code.
type Response struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		OK:   true,
		Data: data,
	})
}

// OK sends a success payload with extra top-level fields merged in, for
// endpoints whose contract is {ok:true, token:...} rather than {ok, data}.
func OK(c *gin.Context, statusCode int, fields gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range fields {
		payload[k] = v
	}
	c.JSON(statusCode, payload)
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		OK:      false,
		Message: message,
	})
}

// ValidationError reports per-field failures as a 422 with an errors map.
func ValidationError(c *gin.Context, errors interface{}) {
	c.JSON(http.StatusUnprocessableEntity, Response{
		OK:      false,
		Message: "validation failed",
		Errors:  errors,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
