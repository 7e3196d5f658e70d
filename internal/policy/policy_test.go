package policy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tastybook/backend/internal/models"
	"github.com/tastybook/backend/internal/policy"
)

func publicRecipe(owner uuid.UUID) *models.Recipe {
	return &models.Recipe{ID: uuid.New(), Visibility: models.VisibilityPublic, CreatedBy: owner}
}

func privateRecipe(owner uuid.UUID) *models.Recipe {
	return &models.Recipe{ID: uuid.New(), Visibility: models.VisibilityPrivate, CreatedBy: owner}
}

func TestCanReadRecipePublic(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	recipe := publicRecipe(owner)

	assert.NoError(t, policy.CanReadRecipe(recipe, nil))
	assert.NoError(t, policy.CanReadRecipe(recipe, &stranger))
	assert.NoError(t, policy.CanReadRecipe(recipe, &owner))
}

func TestCanReadRecipePrivate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	recipe := privateRecipe(owner)

	assert.NoError(t, policy.CanReadRecipe(recipe, &owner))
	assert.ErrorIs(t, policy.CanReadRecipe(recipe, &stranger), policy.ErrRecipeAccess)
	assert.ErrorIs(t, policy.CanReadRecipe(recipe, nil), policy.ErrRecipeAccess)
}

func TestCanWriteRecipeOwnerOnly(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	// Visibility never grants write access.
	for _, recipe := range []*models.Recipe{publicRecipe(owner), privateRecipe(owner)} {
		assert.NoError(t, policy.CanWriteRecipe(recipe, &owner))
		assert.ErrorIs(t, policy.CanWriteRecipe(recipe, &stranger), policy.ErrRecipeModify)
		assert.ErrorIs(t, policy.CanWriteRecipe(recipe, nil), policy.ErrAuthRequired)
	}
}

func TestCanCreateRecipe(t *testing.T) {
	caller := uuid.New()
	assert.NoError(t, policy.CanCreateRecipe(&caller))
	assert.ErrorIs(t, policy.CanCreateRecipe(nil), policy.ErrAuthRequired)
}

func TestCanReadCommentFollowsRecipe(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, policy.CanReadComment(publicRecipe(owner), nil))
	assert.NoError(t, policy.CanReadComment(privateRecipe(owner), &owner))
	assert.ErrorIs(t, policy.CanReadComment(privateRecipe(owner), &stranger), policy.ErrRecipeAccess)
}

func TestCanWriteCommentAuthorOnly(t *testing.T) {
	author := uuid.New()
	recipeOwner := uuid.New()
	comment := &models.Comment{ID: uuid.New(), RecipeID: uuid.New(), CreatedBy: author}

	assert.NoError(t, policy.CanWriteComment(comment, &author))
	assert.ErrorIs(t, policy.CanWriteComment(comment, nil), policy.ErrAuthRequired)

	// Owning the parent recipe does not grant comment write access.
	assert.ErrorIs(t, policy.CanWriteComment(comment, &recipeOwner), policy.ErrCommentModify)
}

func TestCanCreateComment(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, policy.CanCreateComment(publicRecipe(owner), &stranger))
	assert.NoError(t, policy.CanCreateComment(privateRecipe(owner), &owner))
	assert.ErrorIs(t, policy.CanCreateComment(privateRecipe(owner), &stranger), policy.ErrRecipeAccess)

	// Anonymous callers may never comment, public recipe or not.
	assert.ErrorIs(t, policy.CanCreateComment(publicRecipe(owner), nil), policy.ErrAuthRequired)
}
