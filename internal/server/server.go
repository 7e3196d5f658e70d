package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tastybook/backend/config"
	"github.com/tastybook/backend/internal/api"
	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/storage"
)

// Server represents the HTTP server.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance with all routes registered.
func New(cfg *config.Config, db *gorm.DB, store storage.BlobStore, redisClient *redis.Client) *Server {
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api.RegisterRoutes(router, db, store, redisClient, cfg)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start blocks serving requests until the listener fails or the server
// is shut down.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
