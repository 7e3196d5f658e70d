package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/types"
)

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GenerateToken(userID uuid.UUID) (string, error)
	ResolveIdentity(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, callerID *uuid.UUID, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID, updates *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) error
	ListRecipes(ctx context.Context, callerID uuid.UUID) ([]*models.Recipe, error)
	ListUserRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	SearchRecipes(ctx context.Context, query string, callerID *uuid.UUID) ([]*models.Recipe, error)
	AttachImage(ctx context.Context, id uuid.UUID, callerID *uuid.UUID, objectName string) (*models.Recipe, error)
}

// IFavoriteService defines the interface for the favorites set.
type IFavoriteService interface {
	Add(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error
	Remove(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error
	IsFavorite(ctx context.Context, userID *uuid.UUID, recipeID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ IRecipeService   = (*RecipeService)(nil)
	_ IFavoriteService = (*FavoriteService)(nil)
)
