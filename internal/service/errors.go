package service

import "errors"

// Typed outcomes surfaced by the services. The api package maps each
// of these to a status code and a stable reason string; anything else
// is treated as an opaque store failure.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotInFavorites  = errors.New("recipe not in favorites")

	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenExpired = errors.New("token has expired")
	ErrInvalidToken = errors.New("invalid token")

	ErrTooManyImages = errors.New("maximum 5 images")
)
