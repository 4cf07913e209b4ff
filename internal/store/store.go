// Package store defines the persistence boundary consumed by the services.
// Each Update is atomic at single-row granularity only; callers must not
// assume isolation across rows.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
)

// ErrNotFound is returned when a referenced entity is absent.
var ErrNotFound = errors.New("record not found")

// UserStore persists User rows.
type UserStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Update runs mutate against the current row under a row lock and saves
	// the result. A non-nil error from mutate aborts the write and is
	// returned unchanged.
	Update(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) (*models.User, error)
	// Delete removes the user and cascades: the user is detached from every
	// other user's follow lists, owned recipes are deleted (with their own
	// cascade) and authored comments are removed.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.User, error)
}

// RecipeStore persists Recipe rows.
type RecipeStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*models.Recipe) error) (*models.Recipe, error)
	// Delete removes the recipe and cascades: the id is detached from every
	// user's favorite, like, owned-recipe and meal lists, and the recipe's
	// comments are deleted.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Recipe, error)
	ListByChef(ctx context.Context, chefID uuid.UUID) ([]*models.Recipe, error)
}

// CommentStore persists Comment rows.
type CommentStore interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*models.Comment, error)
}
