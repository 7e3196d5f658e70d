package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/storage"
)

// UserService handles profile operations and account deletion.
type UserService struct {
	db    *gorm.DB
	store storage.BlobStore
}

func NewUserService(db *gorm.DB, store storage.BlobStore) *UserService {
	return &UserService{db: db, store: store}
}

// GetProfile retrieves a user by id.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfileRequest carries the mutable profile fields; empty
// fields are left unchanged.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateProfile applies the given changes to the user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = req.Email
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes a user and cascades to everything they own:
// their recipes (with those recipes' comments and favorites entries),
// their comments on other recipes, and their own favorites set. Stored
// image files are released afterwards; an object-store failure is
// logged, not retried.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("created_by = ?", userID).Find(&recipes).Error; err != nil {
		return err
	}
	recipeIDs := make([]uuid.UUID, len(recipes))
	for i, r := range recipes {
		recipeIDs[i] = r.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.RecipeFavorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("created_by = ?", userID).Delete(&models.Recipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("created_by = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.RecipeFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return err
	}

	if s.store != nil {
		for _, recipe := range recipes {
			for _, objectName := range recipe.Images {
				if err := s.store.DeleteImage(ctx, objectName); err != nil {
					log.Printf("[UserService] failed to release image %s of recipe %s: %v", objectName, recipe.ID, err)
				}
			}
		}
	}
	return nil
}
