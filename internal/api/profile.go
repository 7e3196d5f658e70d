package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/service"
)

// ProfileHandler handles the caller's own account: profile reads and
// updates, account deletion, and the caller-scoped recipe lists.
type ProfileHandler struct {
	userService     *service.UserService
	recipeService   service.IRecipeService
	favoriteService service.IFavoriteService
	validator       middleware.TokenValidator
}

func NewProfileHandler(
	userService *service.UserService,
	recipeService service.IRecipeService,
	favoriteService service.IFavoriteService,
	validator middleware.TokenValidator,
) *ProfileHandler {
	return &ProfileHandler{
		userService:     userService,
		recipeService:   recipeService,
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users/me")
	users.Use(middleware.AuthMiddleware(h.validator))
	{
		users.GET("", h.GetProfile)
		users.PUT("", h.UpdateProfile)
		users.DELETE("", h.DeleteAccount)
		users.GET("/recipes", h.ListOwnRecipes)
		users.GET("/favorites", h.ListFavorites)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	callerID := middleware.CallerID(c)

	user, err := h.userService.GetProfile(c.Request.Context(), *callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID := middleware.CallerID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), *callerID, &service.UpdateProfileRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	callerID := middleware.CallerID(c)

	if err := h.userService.DeleteAccount(c.Request.Context(), *callerID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) ListOwnRecipes(c *gin.Context) {
	callerID := middleware.CallerID(c)

	recipes, err := h.recipeService.ListUserRecipes(c.Request.Context(), *callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *ProfileHandler) ListFavorites(c *gin.Context) {
	callerID := middleware.CallerID(c)

	recipes, err := h.favoriteService.ListFavorites(c.Request.Context(), *callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
