package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

// UserService handles profile reads and writes plus the meal plan.
type UserService struct {
	users   store.UserStore
	recipes store.RecipeStore
}

// NewUserService creates a new UserService instance.
func NewUserService(users store.UserStore, recipes store.RecipeStore) *UserService {
	return &UserService{users: users, recipes: recipes}
}

// Get retrieves one user.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// List returns all users; handlers project this down to public fields.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// UpdateProfile applies the provided profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	if req.Username != nil {
		if err := models.ValidateUsername(*req.Username); err != nil {
			return nil, err
		}
	}
	return s.users.Update(ctx, id, func(u *models.User) error {
		if req.Username != nil {
			u.Username = *req.Username
		}
		if req.Bio != nil {
			u.Bio = *req.Bio
		}
		if req.ProfilePictureURL != nil {
			u.ProfilePictureURL = *req.ProfilePictureURL
		}
		if req.Education != nil {
			u.Education = *req.Education
		}
		if req.Award != nil {
			u.Award = *req.Award
		}
		return nil
	})
}

// Delete removes the account. The store cascades the cleanup of owned
// recipes, authored comments and follow-list references.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

// PlanMeal assigns a recipe to a meal slot, replacing any recipe already
// planned there.
func (s *UserService) PlanMeal(ctx context.Context, userID uuid.UUID, slot models.MealSlot, recipeID uuid.UUID) (*models.User, error) {
	if !slot.Valid() {
		return nil, &models.ValidationError{Field: "slot", Message: string(slot) + " is not a valid meal slot"}
	}
	if _, err := s.recipes.Get(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.users.Update(ctx, userID, func(u *models.User) error {
		meals := u.Meals[:0]
		for _, m := range u.Meals {
			if m.Slot != slot {
				meals = append(meals, m)
			}
		}
		u.Meals = append(meals, models.Meal{Slot: slot, RecipeID: recipeID})
		return nil
	})
}

// UnplanMeal clears a meal slot; it fails with store.ErrNotFound when the
// slot is empty.
func (s *UserService) UnplanMeal(ctx context.Context, userID uuid.UUID, slot models.MealSlot) (*models.User, error) {
	if !slot.Valid() {
		return nil, &models.ValidationError{Field: "slot", Message: string(slot) + " is not a valid meal slot"}
	}
	return s.users.Update(ctx, userID, func(u *models.User) error {
		meals := u.Meals[:0]
		found := false
		for _, m := range u.Meals {
			if m.Slot == slot {
				found = true
				continue
			}
			meals = append(meals, m)
		}
		if !found {
			return store.ErrNotFound
		}
		u.Meals = meals
		return nil
	})
}
