package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/policy"
	"github.com/tastybook/backend/internal/service"
	"github.com/tastybook/backend/internal/testhelpers"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := createUser(t, db, "owner@example.com")
	fan := createUser(t, db, "fan@example.com")
	recipe := createRecipe(t, db, owner.ID, models.VisibilityPublic)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, fan.ID, recipe.ID))
	require.NoError(t, svc.Add(ctx, fan.ID, recipe.ID))

	var count int64
	require.NoError(t, db.Model(&models.RecipeFavorite{}).Where("user_id = ?", fan.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteRequiresReadAccess(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := createUser(t, db, "owner@example.com")
	stranger := createUser(t, db, "stranger@example.com")
	private := createRecipe(t, db, owner.ID, models.VisibilityPrivate)
	ctx := context.Background()

	err := svc.Add(ctx, stranger.ID, private.ID)
	assert.ErrorIs(t, err, policy.ErrRecipeAccess)

	// The owner can favorite their own private recipe.
	assert.NoError(t, svc.Add(ctx, owner.ID, private.ID))
}

func TestAddFavoriteMissingRecipe(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	fan := createUser(t, db, "fan@example.com")

	err := svc.Add(context.Background(), fan.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := createUser(t, db, "owner@example.com")
	fan := createUser(t, db, "fan@example.com")
	recipe := createRecipe(t, db, owner.ID, models.VisibilityPublic)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, fan.ID, recipe.ID))
	require.NoError(t, svc.Remove(ctx, fan.ID, recipe.ID))

	err := svc.Remove(ctx, fan.ID, recipe.ID)
	assert.ErrorIs(t, err, service.ErrNotInFavorites)
}

func TestIsFavorite(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	owner := createUser(t, db, "owner@example.com")
	fan := createUser(t, db, "fan@example.com")
	recipe := createRecipe(t, db, owner.ID, models.VisibilityPublic)
	ctx := context.Background()

	// Anonymous callers never have favorites.
	fav, err := svc.IsFavorite(ctx, nil, recipe.ID)
	require.NoError(t, err)
	assert.False(t, fav)

	fav, err = svc.IsFavorite(ctx, &fan.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, fav)

	require.NoError(t, svc.Add(ctx, fan.ID, recipe.ID))
	fav, err = svc.IsFavorite(ctx, &fan.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestListFavorites(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewFavoriteService(db)
	recipes := service.NewRecipeService(db, nil)
	owner := createUser(t, db, "owner@example.com")
	fan := createUser(t, db, "fan@example.com")
	first := createRecipe(t, db, owner.ID, models.VisibilityPublic)
	second := createRecipe(t, db, owner.ID, models.VisibilityPublic)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, fan.ID, first.ID))
	require.NoError(t, svc.Add(ctx, fan.ID, second.ID))

	list, err := svc.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Deleting the recipe drops it from everyone's favorites.
	require.NoError(t, recipes.DeleteRecipe(ctx, first.ID, &owner.ID))

	list, err = svc.ListFavorites(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)
}
