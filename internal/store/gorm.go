package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
)

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// lockRow adds a row lock where the dialect supports one. SQLite serializes
// writers on its own.
func lockRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// referencing matches rows whose JSONB list columns contain the given id.
// Postgres needs the ::text cast before LIKE; SQLite stores JSON as text.
func referencing(tx *gorm.DB, id uuid.UUID, columns ...string) *gorm.DB {
	like := "%" + id.String() + "%"
	q := tx
	for i, col := range columns {
		expr := col + " LIKE ?"
		if tx.Dialector.Name() == "postgres" {
			expr = col + "::text LIKE ?"
		}
		if i == 0 {
			q = q.Where(expr, like)
		} else {
			q = q.Or(expr, like)
		}
	}
	return q
}

type userStore struct {
	db *gorm.DB
}

// NewUserStore creates a GORM-backed UserStore.
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *userStore) Update(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) (*models.User, error) {
	var out *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := lockRow(tx).First(&user, "id = ?", id).Error; err != nil {
			return mapErr(err)
		}
		if err := mutate(&user); err != nil {
			return err
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		out = &user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *userStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := lockRow(tx).First(&user, "id = ?", id).Error; err != nil {
			return mapErr(err)
		}

		// Owned recipes go first, each with its own detach cascade.
		var owned []models.Recipe
		if err := tx.Find(&owned, "chef_id = ?", id).Error; err != nil {
			return err
		}
		for i := range owned {
			if err := deleteRecipeTx(tx, &owned[i]); err != nil {
				return err
			}
		}

		// Comments the user left on other chefs' recipes.
		var authored []models.Comment
		if err := tx.Find(&authored, "author_id = ?", id).Error; err != nil {
			return err
		}
		for _, c := range authored {
			if err := detachCommentTx(tx, c.RecipeID, c.ID); err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Comment{}, "author_id = ?", id).Error; err != nil {
			return err
		}

		// Drop the user from everyone else's follow lists.
		var linked []models.User
		if err := referencing(tx.Model(&models.User{}), id, "following_list", "follower_list").Find(&linked).Error; err != nil {
			return err
		}
		for i := range linked {
			other := &linked[i]
			other.FollowingList, _ = other.FollowingList.Remove(id)
			other.FollowerList, _ = other.FollowerList.Remove(id)
			if err := tx.Save(other).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

func (s *userStore) List(ctx context.Context) ([]*models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	result := make([]*models.User, len(users))
	for i := range users {
		result[i] = &users[i]
	}
	return result, nil
}

type recipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a GORM-backed RecipeStore.
func NewRecipeStore(db *gorm.DB) RecipeStore {
	return &recipeStore{db: db}
}

func (s *recipeStore) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &recipe, nil
}

func (s *recipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	return s.db.WithContext(ctx).Create(recipe).Error
}

func (s *recipeStore) Update(ctx context.Context, id uuid.UUID, mutate func(*models.Recipe) error) (*models.Recipe, error) {
	var out *models.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := lockRow(tx).First(&recipe, "id = ?", id).Error; err != nil {
			return mapErr(err)
		}
		if err := mutate(&recipe); err != nil {
			return err
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		out = &recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *recipeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := lockRow(tx).First(&recipe, "id = ?", id).Error; err != nil {
			return mapErr(err)
		}
		return deleteRecipeTx(tx, &recipe)
	})
}

// deleteRecipeTx removes a recipe together with its comments and every
// reference other rows hold to it.
func deleteRecipeTx(tx *gorm.DB, recipe *models.Recipe) error {
	if err := tx.Delete(&models.Comment{}, "recipe_id = ?", recipe.ID).Error; err != nil {
		return err
	}

	var linked []models.User
	q := referencing(tx.Model(&models.User{}), recipe.ID,
		"favorite_list", "like_list", "recipes", "meals")
	if err := q.Find(&linked).Error; err != nil {
		return err
	}
	for i := range linked {
		user := &linked[i]
		user.FavoriteList, _ = user.FavoriteList.Remove(recipe.ID)
		user.LikeList, _ = user.LikeList.Remove(recipe.ID)
		user.Recipes, _ = user.Recipes.Remove(recipe.ID)
		meals := user.Meals[:0]
		for _, m := range user.Meals {
			if m.RecipeID != recipe.ID {
				meals = append(meals, m)
			}
		}
		user.Meals = meals
		if err := tx.Save(user).Error; err != nil {
			return err
		}
	}

	return tx.Delete(&models.Recipe{}, "id = ?", recipe.ID).Error
}

// detachCommentTx pulls a comment id out of its recipe's comment list. A
// recipe that is already gone is not an error here.
func detachCommentTx(tx *gorm.DB, recipeID, commentID uuid.UUID) error {
	var recipe models.Recipe
	if err := lockRow(tx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	var removed bool
	if recipe.Comments, removed = recipe.Comments.Remove(commentID); !removed {
		return nil
	}
	return tx.Save(&recipe).Error
}

func (s *recipeStore) List(ctx context.Context) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

func (s *recipeStore) ListByChef(ctx context.Context, chefID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes, "chef_id = ?", chefID).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

type commentStore struct {
	db *gorm.DB
}

// NewCommentStore creates a GORM-backed CommentStore.
func NewCommentStore(db *gorm.DB) CommentStore {
	return &commentStore{db: db}
}

func (s *commentStore) Get(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return &comment, nil
}

func (s *commentStore) Create(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *commentStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *commentStore) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*models.Comment, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Order("created_at").Find(&comments, "recipe_id = ?", recipeID).Error; err != nil {
		return nil, err
	}
	result := make([]*models.Comment, len(comments))
	for i := range comments {
		result[i] = &comments[i]
	}
	return result, nil
}
