package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

// RecipeService handles recipe publishing and editing. Creating a recipe is
// a paired mutation: the recipe row plus the chef's owned-recipe list.
type RecipeService struct {
	recipes store.RecipeStore
	users   store.UserStore
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(recipes store.RecipeStore, users store.UserStore) *RecipeService {
	return &RecipeService{recipes: recipes, users: users}
}

// CreateForUser publishes a recipe owned by chefID and records it on the
// chef's row.
func (s *RecipeService) CreateForUser(ctx context.Context, chefID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if _, err := s.users.Get(ctx, chefID); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       req.Title,
		Ingredients: models.IngredientList(req.Ingredients),
		Steps:       models.StringList(req.Steps),
		ImageURL:    req.ImageURL,
		ChefID:      chefID,
		Cooktime:    req.Cooktime,
		Level:       req.Level,
		Calories:    req.Calories,
		Serves:      req.Serves,
		SpecialTag:  req.SpecialTag,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}

	err := completePaired("publish", "recipe "+recipe.ID.String(), "user "+chefID.String(), func() error {
		_, err := s.users.Update(ctx, chefID, func(u *models.User) error {
			u.Recipes = u.Recipes.Add(recipe.ID)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Get retrieves a recipe by ID.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	return s.recipes.Get(ctx, id)
}

// List returns all recipes; handlers project this down to summaries.
func (s *RecipeService) List(ctx context.Context) ([]*models.Recipe, error) {
	return s.recipes.List(ctx)
}

// ListByChef returns the recipes a user published.
func (s *RecipeService) ListByChef(ctx context.Context, chefID uuid.UUID) ([]*models.Recipe, error) {
	return s.recipes.ListByChef(ctx, chefID)
}

// Update applies the provided recipe fields after re-validating the result.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	return s.recipes.Update(ctx, id, func(r *models.Recipe) error {
		if req.Title != nil {
			r.Title = *req.Title
		}
		if req.Ingredients != nil {
			r.Ingredients = models.IngredientList(*req.Ingredients)
		}
		if req.Steps != nil {
			r.Steps = models.StringList(*req.Steps)
		}
		if req.ImageURL != nil {
			r.ImageURL = *req.ImageURL
		}
		if req.Cooktime != nil {
			r.Cooktime = *req.Cooktime
		}
		if req.Level != nil {
			r.Level = *req.Level
		}
		if req.Calories != nil {
			r.Calories = *req.Calories
		}
		if req.Serves != nil {
			r.Serves = *req.Serves
		}
		if req.SpecialTag != nil {
			r.SpecialTag = *req.SpecialTag
		}
		return r.Validate()
	})
}

// Delete removes the recipe. The store cascades the detach from every
// user's lists and deletes the recipe's comments.
func (s *RecipeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.recipes.Delete(ctx, id)
}
