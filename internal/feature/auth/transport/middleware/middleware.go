// Package middleware provides the Gin middleware guarding admin routes.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/api"
	"cms_backend/internal/feature/auth/domain/entity"
	"cms_backend/internal/feature/auth/usecase"
	platformjwt "cms_backend/internal/platform/jwt"
)

// contextUserKey is the Gin context key holding the resolved user.
const contextUserKey = "currentUser"

// TokenVerifier checks a bearer token and returns its claims.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (platform/jwt).
type TokenVerifier interface {
	Verify(token string) (*platformjwt.Claims, error)
}

// UserResolver loads the current user record for a verified token subject.
type UserResolver interface {
	ResolveUser(ctx context.Context, id string) (*entity.User, error)
}

// Authenticated returns middleware that verifies the Authorization header and
// resolves the current user into the request context. The user is re-read
// from storage on every request so the stored role, not the token's copy,
// drives authorization.
func Authenticated(verifier TokenVerifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			detail := "token is invalid"
			if errors.Is(err, platformjwt.ErrTokenExpired) {
				detail = "token has expired"
			}
			slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: detail})
			return
		}

		user, err := users.ResolveUser(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				// Valid token for an account that no longer exists.
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "user not found"})
				return
			}
			slog.Error("user resolution failed", "error", err, "user_id", claims.Subject)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "internal server error"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// AdminOnly returns middleware that rejects any request whose resolved user
// does not hold the admin role. It must run after Authenticated.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(entity.RoleAdmin)
}

// RequireRole returns middleware enforcing an exact role match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "missing bearer token"})
			return
		}
		if user.Role != role {
			slog.Warn("role check failed", "required", role, "actual", user.Role, "user_id", user.ID)
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Detail: "admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticated for this request.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
