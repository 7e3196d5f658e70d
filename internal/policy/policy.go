// Package policy decides, per resource and per caller, whether an
// operation is permitted. Every handler consults these functions
// instead of re-deriving ownership checks ad hoc.
//
// A nil caller id means the request is anonymous. A nil return means
// ALLOW; a non-nil return is the DENY reason and is mapped to an HTTP
// status by the api package. Resource existence is checked by the
// services before any function here runs, so a missing resource is
// reported as not-found, never as a permission failure.
package policy

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tastybook/backend/internal/models"
)

var (
	ErrAuthRequired  = errors.New("authentication required")
	ErrRecipeAccess  = errors.New("unauthorized to access this recipe")
	ErrRecipeModify  = errors.New("unauthorized to modify this recipe")
	ErrCommentModify = errors.New("unauthorized to modify this comment")
)

// CanReadRecipe allows anyone on a public recipe and only the owner on
// a private one.
func CanReadRecipe(recipe *models.Recipe, callerID *uuid.UUID) error {
	if recipe.IsPublic() {
		return nil
	}
	if callerID != nil && *callerID == recipe.CreatedBy {
		return nil
	}
	return ErrRecipeAccess
}

// CanWriteRecipe allows only the owner, regardless of visibility.
func CanWriteRecipe(recipe *models.Recipe, callerID *uuid.UUID) error {
	if callerID == nil {
		return ErrAuthRequired
	}
	if *callerID != recipe.CreatedBy {
		return ErrRecipeModify
	}
	return nil
}

// CanCreateRecipe allows any authenticated caller.
func CanCreateRecipe(callerID *uuid.UUID) error {
	if callerID == nil {
		return ErrAuthRequired
	}
	return nil
}

// CanReadComment delegates to the parent recipe's read rule; a comment
// carries no visibility of its own.
func CanReadComment(parent *models.Recipe, callerID *uuid.UUID) error {
	return CanReadRecipe(parent, callerID)
}

// CanWriteComment allows only the comment's author. The parent
// recipe's owner gets no say here, even on their own recipe.
func CanWriteComment(comment *models.Comment, callerID *uuid.UUID) error {
	if callerID == nil {
		return ErrAuthRequired
	}
	if *callerID != comment.CreatedBy {
		return ErrCommentModify
	}
	return nil
}

// CanCreateComment allows commenting exactly where the caller may
// read: an authenticated caller passing the recipe read rule.
func CanCreateComment(parent *models.Recipe, callerID *uuid.UUID) error {
	if callerID == nil {
		return ErrAuthRequired
	}
	return CanReadRecipe(parent, callerID)
}
