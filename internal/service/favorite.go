package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// FavoriteService manages the favorite list: plain set membership on the
// user row, with a recipe existence check but no paired counter.
type FavoriteService struct {
	users   store.UserStore
	recipes store.RecipeStore
}

// NewFavoriteService creates a new FavoriteService instance.
func NewFavoriteService(users store.UserStore, recipes store.RecipeStore) *FavoriteService {
	return &FavoriteService{users: users, recipes: recipes}
}

// AddFavorite inserts recipeID into the user's favorite set.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.User, error) {
	if _, err := s.recipes.Get(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.users.Update(ctx, userID, func(u *models.User) error {
		if u.FavoriteList.Contains(recipeID) {
			return ErrAlreadyExists
		}
		u.FavoriteList = u.FavoriteList.Add(recipeID)
		return nil
	})
}

// RemoveFavorite removes recipeID from the user's favorite set; it fails
// with store.ErrNotFound when the recipe was not favorited.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*models.User, error) {
	return s.users.Update(ctx, userID, func(u *models.User) error {
		var removed bool
		if u.FavoriteList, removed = u.FavoriteList.Remove(recipeID); !removed {
			return store.ErrNotFound
		}
		return nil
	})
}

// Favorites resolves the user's favorite recipes, skipping dangling ids.
func (s *FavoriteService) Favorites(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*models.Recipe, 0, len(user.FavoriteList))
	for _, id := range user.FavoriteList {
		recipe, err := s.recipes.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, recipe)
	}
	return result, nil
}
