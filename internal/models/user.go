package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealSlot is the meal-plan position a recipe is assigned to
type MealSlot string

const (
	MealBreakfast MealSlot = "Breakfast"
	MealLunch     MealSlot = "Lunch"
	MealDinner    MealSlot = "Dinner"
)

// Valid reports whether the slot is a member of the closed enum.
func (s MealSlot) Valid() bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Meal assigns a recipe to a meal-plan slot
type Meal struct {
	Slot     MealSlot  `json:"slot"`
	RecipeID uuid.UUID `json:"recipe_id"`
}

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Username          string    `gorm:"size:50;not null" json:"username"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	ProfilePictureURL string    `gorm:"size:255" json:"profile_picture_url"`
	Bio               string    `gorm:"type:text" json:"bio"`
	Education         string    `json:"education"`
	Award             string    `json:"award"`
	FavoriteList      UUIDList  `gorm:"type:jsonb;not null;default:'[]'" json:"favorite_list"`
	LikeList          UUIDList  `gorm:"type:jsonb;not null;default:'[]'" json:"like_list"`
	FollowingList     UUIDList  `gorm:"type:jsonb;not null;default:'[]'" json:"following_list"`
	FollowerList      UUIDList  `gorm:"type:jsonb;not null;default:'[]'" json:"follower_list"`
	Recipes           UUIDList  `gorm:"type:jsonb;not null;default:'[]'" json:"recipes"`
	Meals             MealList  `gorm:"type:jsonb;not null;default:'[]'" json:"meals"`
}

// BeforeCreate assigns the id and fills list defaults so stored rows never
// round-trip with null arrays.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.FavoriteList == nil {
		u.FavoriteList = UUIDList{}
	}
	if u.LikeList == nil {
		u.LikeList = UUIDList{}
	}
	if u.FollowingList == nil {
		u.FollowingList = UUIDList{}
	}
	if u.FollowerList == nil {
		u.FollowerList = UUIDList{}
	}
	if u.Recipes == nil {
		u.Recipes = UUIDList{}
	}
	if u.Meals == nil {
		u.Meals = MealList{}
	}
	return nil
}

// MealFor returns the planned meal for the slot, if any.
func (u *User) MealFor(slot MealSlot) (Meal, bool) {
	for _, m := range u.Meals {
		if m.Slot == slot {
			return m, true
		}
	}
	return Meal{}, false
}
