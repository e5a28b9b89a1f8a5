package middleware

import (
	"net/http"

	"shopapi/api/response"
	"shopapi/domain/user"

	"github.com/gin-gonic/gin"
)

// Identity headers set by the upstream auth layer. Token verification happens
// there; this service trusts what it forwards.
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"
	UserNameHeader = "X-User-Name"
)

// Gin context keys for the forwarded identity.
const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
	UserNameKey = "user_name"
)

// Identity stores the forwarded caller identity on the gin context. Requests
// without an identity pass through; RequireRole rejects them later if the
// route needs one.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(UserIDHeader); id != "" {
			c.Set(UserIDKey, id)
		}
		role := c.GetHeader(UserRoleHeader)
		if role == "" {
			role = user.RoleUser
		}
		c.Set(UserRoleKey, role)
		if name := c.GetHeader(UserNameHeader); name != "" {
			c.Set(UserNameKey, name)
		}

		c.Next()
	}
}

// RequireIdentity rejects requests that carry no caller identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			abortWithStatus(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireRole rejects requests whose forwarded role is not in the allow list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if UserID(c) == "" {
			abortWithStatus(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if _, ok := allowed[Role(c)]; !ok {
			abortWithStatus(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role")
			return
		}
		c.Next()
	}
}

// UserID returns the forwarded caller id, empty when anonymous.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// Role returns the forwarded caller role.
func Role(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

// UserName returns the forwarded caller display name.
func UserName(c *gin.Context) string {
	return c.GetString(UserNameKey)
}

func abortWithStatus(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, response.Response{
		Success:   false,
		Error:     code,
		Message:   message,
		Code:      status,
		RequestID: response.GetRequestID(c),
	})
}
