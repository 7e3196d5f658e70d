package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastybook/backend/internal/service"
	"github.com/tastybook/backend/internal/types"
)

// TokenValidator resolves a raw bearer token into a caller identity.
type TokenValidator interface {
	ResolveIdentity(token string) (*types.TokenClaims, error)
}

// UserIDKey is the gin context key holding the authenticated caller id.
const UserIDKey = "user_id"

// AuthMiddleware requires a valid bearer token. A missing, malformed
// or expired credential aborts with 401 and a specific reason.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. Token is missing."})
			c.Abort()
			return
		}

		claims, err := validator.ResolveIdentity(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": reasonFor(err)})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuthMiddleware admits anonymous callers but still rejects a
// corrupt or expired credential: absence is tolerated, damage is not.
func OptionalAuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := validator.ResolveIdentity(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": reasonFor(err)})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated caller id, or nil for anonymous
// requests.
func CallerID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func reasonFor(err error) string {
	if errors.Is(err, service.ErrTokenExpired) {
		return "Token expired."
	}
	return "Invalid token."
}
