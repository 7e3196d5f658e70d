package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tastybook/backend/internal/middleware"
	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/service"
	"github.com/tastybook/backend/internal/storage"
)

// RecipeHandler handles recipe CRUD, search, favorites and image
// uploads.
type RecipeHandler struct {
	recipeService   service.IRecipeService
	favoriteService service.IFavoriteService
	validator       middleware.TokenValidator
	store           storage.BlobStore
	maxUploadSize   int64
	creationLimiter *middleware.RateLimiter
}

func NewRecipeHandler(
	recipeService service.IRecipeService,
	favoriteService service.IFavoriteService,
	validator middleware.TokenValidator,
	store storage.BlobStore,
	maxUploadSize int64,
	creationLimiter *middleware.RateLimiter,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:   recipeService,
		favoriteService: favoriteService,
		validator:       validator,
		store:           store,
		maxUploadSize:   maxUploadSize,
		creationLimiter: creationLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.validator)
	optionalAuth := middleware.OptionalAuthMiddleware(h.validator)

	create := []gin.HandlerFunc{auth}
	if h.creationLimiter != nil {
		create = append(create, h.creationLimiter.RateLimitMiddleware())
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", auth, h.ListRecipes)
		recipes.GET("/search", optionalAuth, h.SearchRecipes)
		recipes.GET("/:id", optionalAuth, h.GetRecipe)
		recipes.POST("", append(create, h.CreateRecipe)...)
		recipes.PUT("/:id", auth, h.UpdateRecipe)
		recipes.DELETE("/:id", auth, h.DeleteRecipe)
		recipes.POST("/:id/favorite", auth, h.FavoriteRecipe)
		recipes.DELETE("/:id/favorite", auth, h.UnfavoriteRecipe)
		recipes.POST("/:id/images", auth, h.UploadImage)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	callerID := middleware.CallerID(c)

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), *callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	recipes, err := h.recipeService.SearchRecipes(c.Request.Context(), query, middleware.CallerID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}
	callerID := middleware.CallerID(c)

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), recipeID, callerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), callerID, recipe.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":      recipe,
		"is_favorite": isFavorite,
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := &models.Recipe{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Images:       req.Images,
		Visibility:   req.Visibility,
	}

	created, err := h.recipeService.CreateRecipe(c.Request.Context(), middleware.CallerID(c), recipe)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := &models.Recipe{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Images:       req.Images,
		Visibility:   req.Visibility,
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), recipeID, middleware.CallerID(c), updates)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), recipeID, middleware.CallerID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}
	callerID := middleware.CallerID(c)

	if err := h.favoriteService.Add(c.Request.Context(), *callerID, recipeID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe favorited", "id": recipeID})
}

func (h *RecipeHandler) UnfavoriteRecipe(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}
	callerID := middleware.CallerID(c)

	if err := h.favoriteService.Remove(c.Request.Context(), *callerID, recipeID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe unfavorited", "id": recipeID})
}

// UploadImage stores one image file for a recipe the caller owns. The
// per-file size cap and the per-recipe image cap are both enforced
// here, at the call site.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if file.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the maximum file size"})
		return
	}

	src, err := file.Open()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	defer src.Close()

	objectName, err := h.store.UploadImage(c.Request.Context(), recipeID.String(), file.Filename, src, file.Size)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	recipe, err := h.recipeService.AttachImage(c.Request.Context(), recipeID, middleware.CallerID(c), objectName)
	if err != nil {
		// The object is orphaned if it cannot be attached; remove it.
		if delErr := h.store.DeleteImage(c.Request.Context(), objectName); delErr != nil {
			log.Printf("[api] failed to remove orphaned image %s: %v", objectName, delErr)
		}
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe": recipe,
		"image":  objectName,
		"url":    h.store.ImageURL(objectName),
	})
}

func recipeIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return uuid.Nil, false
	}
	return id, true
}
