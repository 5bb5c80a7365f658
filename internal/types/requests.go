package types

import (
	"github.com/google/uuid"

	"github.com/feastbook/backend/internal/models"
)

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateUserRequest represents the request body for a partial user update.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// LoginRequest represents the request body for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the user representation returned alongside a token.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

// IngredientInput is one ingredient of a create/update recipe payload.
type IngredientInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description" binding:"required"`
	Instructions string            `json:"instructions" binding:"required"`
	Category     models.Category   `json:"category" binding:"required,oneof=breakfast lunch dinner dessert drink snack"`
	CreatedByID  uuid.UUID         `json:"created_by_id" binding:"required"`
	Ingredients  []IngredientInput `json:"ingredients" binding:"dive"`
}

// UpdateRecipeRequest represents the request body for a partial recipe
// update. A non-nil Ingredients slice replaces the stored set wholesale.
type UpdateRecipeRequest struct {
	Title        *string            `json:"title"`
	Description  *string            `json:"description"`
	Instructions *string            `json:"instructions"`
	Category     *models.Category   `json:"category" binding:"omitempty,oneof=breakfast lunch dinner dessert drink snack"`
	Ingredients  *[]IngredientInput `json:"ingredients" binding:"omitempty,dive"`
}

// FavoriteRequest identifies the user toggling a favorite.
type FavoriteRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}
