package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unit is the measurement unit of an ingredient quantity
type Unit string

const (
	UnitGram       Unit = "g"
	UnitKilogram   Unit = "kg"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "pcs"
	UnitTeaspoon   Unit = "tsp"
	UnitTablespoon Unit = "tbsp"
	UnitCup        Unit = "cup"
)

// Valid reports whether the unit is a member of the closed enum.
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitLiter, UnitMilliliter,
		UnitPiece, UnitTeaspoon, UnitTablespoon, UnitCup:
		return true
	}
	return false
}

// Level is the difficulty rating of a recipe
type Level string

const (
	LevelEasy   Level = "Easy"
	LevelMedium Level = "Medium"
	LevelHard   Level = "Hard"
)

// Valid reports whether the level is a member of the closed enum.
func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// Ingredient is one entry of a recipe's ingredient list
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Ingredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	ChefID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"chef_id"`
	Cooktime    int            `json:"cooktime"`
	Level       Level          `gorm:"size:10" json:"level"`
	Calories    int            `json:"calories"`
	Serves      int            `json:"serves"`
	SpecialTag  string         `gorm:"size:50" json:"special_tag"`
	Likes       int            `gorm:"not null;default:0" json:"likes"`
	Comments    UUIDList       `gorm:"type:jsonb;not null;default:'[]'" json:"comments"`
}

// BeforeCreate assigns the id and fills list defaults.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Ingredients == nil {
		r.Ingredients = IngredientList{}
	}
	if r.Steps == nil {
		r.Steps = StringList{}
	}
	if r.Comments == nil {
		r.Comments = UUIDList{}
	}
	return nil
}

// Validate checks the field rules enforced at the boundary rather than by
// the store.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if r.ChefID == uuid.Nil {
		return &ValidationError{Field: "chef", Message: "is required"}
	}
	if !r.Level.Valid() {
		return &ValidationError{Field: "level", Message: "must be one of Easy, Medium or Hard"}
	}
	for _, ing := range r.Ingredients {
		if ing.Name == "" {
			return &ValidationError{Field: "ingredients", Message: "every ingredient needs a name"}
		}
		if ing.Quantity <= 0 {
			return &ValidationError{Field: "ingredients", Message: "quantities must be positive"}
		}
		if !ing.Unit.Valid() {
			return &ValidationError{Field: "ingredients", Message: string(ing.Unit) + " is not a valid unit"}
		}
	}
	if r.Likes < 0 {
		return &ValidationError{Field: "likes", Message: "must not be negative"}
	}
	return nil
}
