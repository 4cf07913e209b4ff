package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// CommentService keeps Comment.recipe and Recipe.comments mutual inverses:
// a comment row and its reference on the recipe move as one logical unit.
type CommentService struct {
	comments store.CommentStore
	recipes  store.RecipeStore
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(comments store.CommentStore, recipes store.RecipeStore) *CommentService {
	return &CommentService{comments: comments, recipes: recipes}
}

// Add creates a comment on the recipe and appends its id to the recipe's
// comment list.
func (s *CommentService) Add(ctx context.Context, recipeID, authorID uuid.UUID, content string) (*models.Comment, error) {
	if _, err := s.recipes.Get(ctx, recipeID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: authorID,
		RecipeID: recipeID,
	}
	if err := comment.Validate(); err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	err := completePaired("comment", "comment "+comment.ID.String(), "recipe "+recipeID.String(), func() error {
		_, err := s.recipes.Update(ctx, recipeID, func(r *models.Recipe) error {
			r.Comments = r.Comments.Add(comment.ID)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the comment row and pulls its id from the owning recipe.
func (s *CommentService) Delete(ctx context.Context, commentID uuid.UUID) error {
	comment, err := s.comments.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	return completePaired("uncomment", "comment "+commentID.String(), "recipe "+comment.RecipeID.String(), func() error {
		_, err := s.recipes.Update(ctx, comment.RecipeID, func(r *models.Recipe) error {
			r.Comments, _ = r.Comments.Remove(commentID)
			return nil
		})
		if errors.Is(err, store.ErrNotFound) {
			// Recipe already deleted; nothing left to detach from.
			return nil
		}
		return err
	})
}

// Get returns one comment.
func (s *CommentService) Get(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	return s.comments.Get(ctx, commentID)
}

// ForRecipe lists a recipe's comments in creation order.
func (s *CommentService) ForRecipe(ctx context.Context, recipeID uuid.UUID) ([]*models.Comment, error) {
	if _, err := s.recipes.Get(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.comments.ListByRecipe(ctx, recipeID)
}
