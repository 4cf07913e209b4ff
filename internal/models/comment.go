package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate checks the required comment fields.
func (c *Comment) Validate() error {
	if c.Content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if c.AuthorID == uuid.Nil {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	if c.RecipeID == uuid.Nil {
		return &ValidationError{Field: "recipe", Message: "is required"}
	}
	return nil
}
