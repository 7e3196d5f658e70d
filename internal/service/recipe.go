package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/policy"
	"github.com/tastybook/backend/internal/storage"
)

// RecipeService handles recipe operations.
type RecipeService struct {
	db    *gorm.DB
	store storage.BlobStore
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB, store storage.BlobStore) *RecipeService {
	return &RecipeService{db: db, store: store}
}

// CreateRecipe persists a new recipe owned by the caller. Nothing is
// stored when the image cap is exceeded.
func (s *RecipeService) CreateRecipe(ctx context.Context, callerID *uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	if err := policy.CanCreateRecipe(callerID); err != nil {
		return nil, err
	}
	if len(recipe.Images) > models.MaxRecipeImages {
		return nil, ErrTooManyImages
	}
	if recipe.Visibility == "" {
		recipe.Visibility = models.VisibilityPublic
	}

	recipe.CreatedBy = *callerID
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID, applying the read rule. A
// missing recipe reports not-found before any access check.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanReadRecipe(recipe, callerID); err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe applies the caller's changes to a recipe they own.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID, updates *models.Recipe) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanWriteRecipe(recipe, callerID); err != nil {
		return nil, err
	}
	if len(updates.Images) > models.MaxRecipeImages {
		return nil, ErrTooManyImages
	}

	recipe.Name = updates.Name
	recipe.Ingredients = updates.Ingredients
	recipe.Instructions = updates.Instructions
	if updates.Images != nil {
		recipe.Images = updates.Images
	}
	if updates.Visibility != "" {
		recipe.Visibility = updates.Visibility
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe the caller owns together with its
// comments and favorites entries, then releases its stored image
// files. Object removal runs after the row deletes and is logged on
// failure rather than retried.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) error {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanWriteRecipe(recipe, callerID); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
	if err != nil {
		return err
	}

	s.releaseImages(ctx, recipe)
	return nil
}

// ListRecipes returns every recipe the caller may read in full: the
// public ones plus their own.
func (s *RecipeService) ListRecipes(ctx context.Context, callerID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where("visibility = ? OR created_by = ?", models.VisibilityPublic, callerID).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return collect(recipes), nil
}

// ListUserRecipes returns the recipes owned by the given user.
func (s *RecipeService) ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("created_by = ?", userID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return collect(recipes), nil
}

// SearchRecipes matches the query case-insensitively against recipe
// names and ingredients, restricted to what the caller may read.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string, callerID *uuid.UUID) ([]*models.Recipe, error) {
	like := "%" + strings.ToLower(query) + "%"

	dbQuery := s.db.WithContext(ctx)
	if s.db.Dialector.Name() == "postgres" {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like)
	} else {
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
	}

	if callerID != nil {
		dbQuery = dbQuery.Where("visibility = ? OR created_by = ?", models.VisibilityPublic, *callerID)
	} else {
		dbQuery = dbQuery.Where("visibility = ?", models.VisibilityPublic)
	}

	var recipes []models.Recipe
	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return collect(recipes), nil
}

// AttachImage appends a stored image reference to a recipe the caller
// owns, respecting the image cap.
func (s *RecipeService) AttachImage(ctx context.Context, id uuid.UUID, callerID *uuid.UUID, objectName string) (*models.Recipe, error) {
	recipe, err := s.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanWriteRecipe(recipe, callerID); err != nil {
		return nil, err
	}
	if len(recipe.Images) >= models.MaxRecipeImages {
		return nil, ErrTooManyImages
	}

	recipe.Images = append(recipe.Images, objectName)
	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) findRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) releaseImages(ctx context.Context, recipe *models.Recipe) {
	if s.store == nil {
		return
	}
	for _, objectName := range recipe.Images {
		if err := s.store.DeleteImage(ctx, objectName); err != nil {
			log.Printf("[RecipeService] failed to release image %s of recipe %s: %v", objectName, recipe.ID, err)
		}
	}
}

func collect(recipes []models.Recipe) []*models.Recipe {
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result
}
