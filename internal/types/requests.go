package types

import (
	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
)

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for updating a profile.
// Nil pointers leave the field untouched.
type UpdateProfileRequest struct {
	Username          *string `json:"username"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Education         *string `json:"education"`
	Award             *string `json:"award"`
}

// CreateRecipeRequest represents the request body for publishing a recipe
type CreateRecipeRequest struct {
	Title       string              `json:"title" binding:"required"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	ImageURL    string              `json:"image_url"`
	Cooktime    int                 `json:"cooktime"`
	Level       models.Level        `json:"level" binding:"required"`
	Calories    int                 `json:"calories"`
	Serves      int                 `json:"serves"`
	SpecialTag  string              `json:"special_tag"`
}

// UpdateRecipeRequest represents the request body for editing a recipe.
// Nil pointers leave the field untouched.
type UpdateRecipeRequest struct {
	Title       *string              `json:"title"`
	Ingredients *[]models.Ingredient `json:"ingredients"`
	Steps       *[]string            `json:"steps"`
	ImageURL    *string              `json:"image_url"`
	Cooktime    *int                 `json:"cooktime"`
	Level       *models.Level        `json:"level"`
	Calories    *int                 `json:"calories"`
	Serves      *int                 `json:"serves"`
	SpecialTag  *string              `json:"special_tag"`
}

// CreateCommentRequest represents the request body for commenting on a recipe
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PlanMealRequest represents the request body for assigning a recipe to a
// meal slot
type PlanMealRequest struct {
	Slot     models.MealSlot `json:"slot" binding:"required"`
	RecipeID uuid.UUID       `json:"recipe_id" binding:"required"`
}
