package api

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RecipeRequest is the body for recipe create and update.
type RecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions string   `json:"instructions" binding:"required"`
	Images       []string `json:"images"`
	Visibility   string   `json:"visibility" binding:"omitempty,oneof=public private"`
}

// CommentRequest is the body for comment create and update.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateProfileRequest is the body for PUT /users/me.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
}
