package database

import (
	"gorm.io/gorm"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
)

// RunMigrations applies the schema for every stored entity.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Comment{},
	)
}
