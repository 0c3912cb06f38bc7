package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextRoleKey    = "currentRole"    // role granted by the admin middleware
	ContextSubjectKey = "currentSubject" // token subject, or "password" for header auth

	RoleAdmin = "admin"
)

// GetRoleFromContext returns the role stored by the auth middleware.
func GetRoleFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", errors.New("role not found in context")
	}
	role, ok := v.(string)
	if !ok {
		return "", errors.New("role in context is not a string")
	}
	return role, nil
}
