package auth

import (
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// Middleware handles JWT validation for incoming HTTP calls.
// Public routes are registered outside the group it guards.
func Middleware(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearer(c.GetHeader("Authorization"))
		if !ok {
			abort(c, errors.ErrMissingToken)
			return
		}
		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(string(UserIDKey), domain.UserID(claims.UserID))
		c.Set(string(RolesKey), claims.Roles)
		c.Next()
	}
}

// UserID returns the caller injected by Middleware.
func UserID(c *gin.Context) (domain.UserID, bool) {
	v, ok := c.Get(string(UserIDKey))
	if !ok {
		return "", false
	}
	id, ok := v.(domain.UserID)
	return id, ok && id != ""
}

func IsAdmin(c *gin.Context) bool {
	roles := c.GetStringSlice(string(RolesKey))
	return lo.Contains(roles, string(domain.RoleAdmin))
}

// bearer expects the standard "Bearer <token>" format.
func bearer(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func abort(c *gin.Context, err error) {
	appErr := errors.MapToHTTPStatus(err)
	c.AbortWithStatusJSON(appErr.Status, appErr)
}
