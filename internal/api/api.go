package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastybook/backend/config"
	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/service"
	"github.com/tastybook/backend/internal/storage"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "TastyBook API is running",
	})
}

// RegisterRoutes wires every handler under /api/v1. The Redis client
// is optional; without it the creation endpoints run unlimited.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, store storage.BlobStore, redisClient *redis.Client, cfg *config.Config) {
	router.GET("/health", HealthCheck)

	var recipeLimiter, commentLimiter *middleware.RateLimiter
	if redisClient != nil {
		recipeLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		commentLimiter = middleware.NewCommentCreationRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(db, store)
	favoriteService := service.NewFavoriteService(db)
	commentService := service.NewCommentService(db)
	userService := service.NewUserService(db, store)

	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, favoriteService, authService, store, cfg.MaxUploadSize, recipeLimiter).RegisterRoutes(v1)
	NewCommentHandler(commentService, authService, commentLimiter).RegisterRoutes(v1)
	NewProfileHandler(userService, recipeService, favoriteService, authService).RegisterRoutes(v1)
}
