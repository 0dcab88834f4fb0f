package middleware

import (
	"net/http"
	"strings"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

// UserResolver turns a verified access token into the authenticated account.
// Implemented by the auth module service.
type UserResolver interface {
	ResolveAccessToken(token string) (*model.User, error)
}

// JWTAuth authenticates the request from the Authorization header and stores
// the resolved user in the request context. Any signature, expiry, scope or
// lookup failure is a 401; the directory is never mutated here.
func JWTAuth(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}

		user, err := resolver.ResolveAccessToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRoles gates a route behind a role allow-list. Fails closed.
func RequireRoles(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !user.Role.In(allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser fetches the authenticated user set by JWTAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

// SetCurrentUser injects a user into the context. Test helper.
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userContextKey, user)
}
