package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/policy"
)

// FavoriteService manages each user's set of favorite recipes.
// Mutations are single-row database operations, so concurrent add and
// remove for the same user cannot lose updates.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Add puts a recipe into the caller's favorites. The caller must be
// able to read the recipe; a private recipe they cannot see cannot be
// favorited. Adding an already-present recipe is a no-op success.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if err := policy.CanReadRecipe(&recipe, &userID); err != nil {
		return err
	}

	fav := models.RecipeFavorite{UserID: userID, RecipeID: recipeID}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		FirstOrCreate(&fav).Error
}

// Remove takes a recipe out of the caller's favorites. Removing an
// absent entry reports not-found so clients can detect stale state.
func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeFavorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotInFavorites
	}
	return nil
}

// IsFavorite reports set membership. An anonymous caller has no
// favorites.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID *uuid.UUID, recipeID uuid.UUID) (bool, error) {
	if userID == nil {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeFavorite{}).
		Where("user_id = ? AND recipe_id = ?", *userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFavorites returns the still-existing recipes in the user's
// favorites set.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return collect(recipes), nil
}
