package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastybook/backend/internal/policy"
	"github.com/tastybook/backend/internal/service"
)

// handleServiceError maps every typed service/policy outcome onto a
// status code and a stable reason string. Anything untyped is a store
// failure: logged in full, surfaced as an opaque 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotInFavorites):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, policy.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, policy.ErrRecipeAccess),
		errors.Is(err, policy.ErrRecipeModify),
		errors.Is(err, policy.ErrCommentModify):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrTooManyImages):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	default:
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
