package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/service"
)

// CommentHandler handles comment creation, listing, editing and
// deletion.
type CommentHandler struct {
	commentService  *service.CommentService
	validator       middleware.TokenValidator
	creationLimiter *middleware.RateLimiter
}

func NewCommentHandler(commentService *service.CommentService, validator middleware.TokenValidator, creationLimiter *middleware.RateLimiter) *CommentHandler {
	return &CommentHandler{
		commentService:  commentService,
		validator:       validator,
		creationLimiter: creationLimiter,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.validator)
	optionalAuth := middleware.OptionalAuthMiddleware(h.validator)

	create := []gin.HandlerFunc{auth}
	if h.creationLimiter != nil {
		create = append(create, h.creationLimiter.RateLimitMiddleware())
	}

	router.GET("/recipes/:id/comments", optionalAuth, h.ListComments)
	router.POST("/recipes/:id/comments", append(create, h.CreateComment)...)

	comments := router.Group("/comments")
	{
		comments.PUT("/:id", auth, h.UpdateComment)
		comments.DELETE("/:id", auth, h.DeleteComment)
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), recipeID, middleware.CallerID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), recipeID, middleware.CallerID(c), req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), commentID, middleware.CallerID(c), req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, middleware.CallerID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func commentIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return uuid.Nil, false
	}
	return id, true
}
