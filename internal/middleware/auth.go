package middleware

import (
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/auth"
	"github.com/DhavalSuthar-24/crickethub/internal/common"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/gin-gonic/gin"
)

const AdminPasswordHeader = "X-Admin-Password"

// AuthMiddleware accepts either "Authorization: Bearer <token>" from
// /api/admin/login or the raw password in X-Admin-Password.
func AuthMiddleware(authn auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authn.Enabled() {
			c.Set(common.ContextRoleKey, common.RoleAdmin)
			c.Set(common.ContextSubjectKey, "anonymous")
			c.Next()
			return
		}

		if pw := c.GetHeader(AdminPasswordHeader); pw != "" {
			if !authn.CheckPassword(pw) {
				responses.Unauthorized(c, "Invalid admin password")
				return
			}
			c.Set(common.ContextRoleKey, common.RoleAdmin)
			c.Set(common.ContextSubjectKey, "password")
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := authn.VerifyToken(bearerToken[1])
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		c.Set(common.ContextRoleKey, claims.Role)
		c.Set(common.ContextSubjectKey, claims.Subject)
		c.Next()
	}
}
