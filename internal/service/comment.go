package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/policy"
)

// CommentService handles comment operations. Read access always runs
// through the parent recipe's visibility rule; write access is the
// author's alone.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment adds a comment to a recipe the caller may read.
func (s *CommentService) CreateComment(ctx context.Context, recipeID uuid.UUID, callerID *uuid.UUID, content string) (*models.Comment, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanCreateComment(recipe, callerID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		Content:   content,
		RecipeID:  recipe.ID,
		CreatedBy: *callerID,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a recipe's comments, gated by the recipe read
// rule.
func (s *CommentService) ListComments(ctx context.Context, recipeID uuid.UUID, callerID *uuid.UUID) ([]*models.Comment, error) {
	recipe, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanReadComment(recipe, callerID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipe.ID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Comment, len(comments))
	for i := range comments {
		result[i] = &comments[i]
	}
	return result, nil
}

// UpdateComment edits a comment the caller authored.
func (s *CommentService) UpdateComment(ctx context.Context, id uuid.UUID, callerID *uuid.UUID, content string) (*models.Comment, error) {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.CanWriteComment(comment, callerID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.db.WithContext(ctx).Save(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment the caller authored.
func (s *CommentService) DeleteComment(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) error {
	comment, err := s.findComment(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanWriteComment(comment, callerID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(comment).Error
}

func (s *CommentService) findRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *CommentService) findComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}
