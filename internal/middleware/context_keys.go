package middleware

import (
	"github.com/clubfundhq/clubfund_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	roleKey     = contextKey("role")
	usernameKey = contextKey("username")
)

// GetRoleFromContext retrieves the authenticated role from the request
// context. It returns the role and a boolean indicating if it was found.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	roleVal := c.Request.Context().Value(roleKey)
	if roleVal == nil {
		return "", false
	}
	role, ok := roleVal.(domain.Role)
	return role, ok
}

// GetUsernameFromContext retrieves the authenticated username from the
// request context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	nameVal := c.Request.Context().Value(usernameKey)
	if nameVal == nil {
		return "", false
	}
	name, ok := nameVal.(string)
	return name, ok
}
