package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/service"
	"github.com/tastybook/backend/internal/types"
)

// fakeValidator resolves a fixed set of tokens.
type fakeValidator struct {
	userID uuid.UUID
}

func (v *fakeValidator) ResolveIdentity(token string) (*types.TokenClaims, error) {
	switch token {
	case "valid":
		return &types.TokenClaims{UserID: v.userID}, nil
	case "expired":
		return nil, service.ErrTokenExpired
	default:
		return nil, service.ErrInvalidToken
	}
}

func newAuthRouter(t *testing.T, optional bool) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	validator := &fakeValidator{userID: userID}

	mw := middleware.AuthMiddleware(validator)
	if optional {
		mw = middleware.OptionalAuthMiddleware(validator)
	}

	router := gin.New()
	router.GET("/probe", mw, func(c *gin.Context) {
		caller := middleware.CallerID(c)
		if caller == nil {
			c.JSON(http.StatusOK, gin.H{"caller": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"caller": caller.String()})
	})
	return router, userID
}

func probe(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router, userID := newAuthRouter(t, false)

	w := probe(router, "Bearer valid")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())

	w = probe(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied. Token is missing.")

	w = probe(router, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired.")

	w = probe(router, "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token.")
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router, userID := newAuthRouter(t, true)

	// Absence is tolerated: the request proceeds anonymously.
	w := probe(router, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "null")

	w = probe(router, "Bearer valid")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())

	// A presented credential must still be sound.
	w = probe(router, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired.")

	w = probe(router, "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
