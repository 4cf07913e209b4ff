package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// EngagementService keeps like-list membership and the recipe like counter
// paired: one unit per user, never double-counted, never negative.
type EngagementService struct {
	users   store.UserStore
	recipes store.RecipeStore
}

// NewEngagementService creates a new EngagementService instance.
func NewEngagementService(users store.UserStore, recipes store.RecipeStore) *EngagementService {
	return &EngagementService{users: users, recipes: recipes}
}

// Like adds recipeID to the user's like list and increments the recipe
// counter by exactly one, as one logical unit.
func (s *EngagementService) Like(ctx context.Context, userID, recipeID uuid.UUID) (*models.Recipe, error) {
	if _, err := s.recipes.Get(ctx, recipeID); err != nil {
		return nil, err
	}

	if _, err := s.users.Update(ctx, userID, func(u *models.User) error {
		if u.LikeList.Contains(recipeID) {
			return ErrAlreadyExists
		}
		u.LikeList = u.LikeList.Add(recipeID)
		return nil
	}); err != nil {
		return nil, err
	}

	var updated *models.Recipe
	err := completePaired("like", "user "+userID.String(), "recipe "+recipeID.String(), func() error {
		recipe, err := s.recipes.Update(ctx, recipeID, func(r *models.Recipe) error {
			r.Likes++
			return nil
		})
		if err != nil {
			return err
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Unlike removes recipeID from the user's like list and decrements the
// counter, clamped at zero.
func (s *EngagementService) Unlike(ctx context.Context, userID, recipeID uuid.UUID) (*models.Recipe, error) {
	if _, err := s.users.Update(ctx, userID, func(u *models.User) error {
		var removed bool
		if u.LikeList, removed = u.LikeList.Remove(recipeID); !removed {
			return store.ErrNotFound
		}
		return nil
	}); err != nil {
		return nil, err
	}

	var updated *models.Recipe
	err := completePaired("unlike", "user "+userID.String(), "recipe "+recipeID.String(), func() error {
		recipe, err := s.recipes.Update(ctx, recipeID, func(r *models.Recipe) error {
			if r.Likes <= 0 {
				// The paired invariant rules this out; a zero counter here
				// means a one-sided write slipped through earlier.
				log.Printf("like counter for recipe %s already at zero, clamping", recipeID)
				r.Likes = 0
				return nil
			}
			r.Likes--
			return nil
		})
		if err != nil {
			return err
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
