package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
)

// UserSummary is the public projection of a user
type UserSummary struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	ProfilePictureURL string    `json:"profile_picture_url"`
}

func toUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:                u.ID,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

func toUserSummaries(users []*models.User) []UserSummary {
	out := make([]UserSummary, len(users))
	for i, u := range users {
		out[i] = toUserSummary(u)
	}
	return out
}

// RecipeSummary is the listing projection of a recipe
type RecipeSummary struct {
	ID       uuid.UUID    `json:"id"`
	Title    string       `json:"title"`
	ImageURL string       `json:"image_url"`
	Cooktime int          `json:"cooktime"`
	Level    models.Level `json:"level"`
	ChefID   uuid.UUID    `json:"chef_id"`
	Likes    int          `json:"likes"`
}

func toRecipeSummary(r *models.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:       r.ID,
		Title:    r.Title,
		ImageURL: r.ImageURL,
		Cooktime: r.Cooktime,
		Level:    r.Level,
		ChefID:   r.ChefID,
		Likes:    r.Likes,
	}
}

func toRecipeSummaries(recipes []*models.Recipe) []RecipeSummary {
	out := make([]RecipeSummary, len(recipes))
	for i, r := range recipes {
		out[i] = toRecipeSummary(r)
	}
	return out
}

// CommentView is a comment with its author resolved
type CommentView struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Author    UserSummary `json:"author"`
}
