// Package middleware provides the bearer-session Gin middleware for
// authenticated routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tutor_backend/internal/feature/auth/domain/entity"
)

// contextUserKey is the Gin context key the resolved user is stored under.
const contextUserKey = "authUser"

// SessionResolver maps a bearer token to the account it belongs to.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (usecase).
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates the bearer
// session token and restricts access to authenticated users only.
// The resolved user is stashed in the request context for handlers.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		tok := strings.TrimPrefix(auth, "Bearer ")

		user, err := resolver.Resolve(c.Request.Context(), tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// UserEmail returns the authenticated user's email, or the empty
// string outside an authenticated route.
func UserEmail(c *gin.Context) string {
	user, ok := CurrentUser(c)
	if !ok {
		return ""
	}
	return user.Email
}
