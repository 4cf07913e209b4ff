// Seeds a couple of demo accounts and recipes for local development.
package main

import (
	"context"
	"log"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/config"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/database"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := store.NewUserStore(db)
	recipes := store.NewRecipeStore(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	recipeService := service.NewRecipeService(recipes, users)

	ctx := context.Background()

	alice, _, err := authService.Signup(ctx, "alice", "alice@example.com", "password123")
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	bob, _, err := authService.Signup(ctx, "bob", "bob@example.com", "password123")
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	_, err = recipeService.CreateForUser(ctx, alice.ID, &types.CreateRecipeRequest{
		Title: "Koshari",
		Ingredients: []models.Ingredient{
			{Name: "rice", Quantity: 200, Unit: models.UnitGram},
			{Name: "lentils", Quantity: 150, Unit: models.UnitGram},
			{Name: "pasta", Quantity: 100, Unit: models.UnitGram},
		},
		Steps:    []string{"Cook the rice and lentils", "Boil the pasta", "Layer and top with fried onions"},
		Cooktime: 45,
		Level:    models.LevelMedium,
		Calories: 650,
		Serves:   4,
	})
	if err != nil {
		log.Fatalf("Failed to seed recipe: %v", err)
	}

	_, err = recipeService.CreateForUser(ctx, bob.ID, &types.CreateRecipeRequest{
		Title: "Shakshuka",
		Ingredients: []models.Ingredient{
			{Name: "eggs", Quantity: 4, Unit: models.UnitPiece},
			{Name: "tomatoes", Quantity: 500, Unit: models.UnitGram},
			{Name: "olive oil", Quantity: 2, Unit: models.UnitTablespoon},
		},
		Steps:    []string{"Simmer the tomato sauce", "Crack in the eggs", "Cover until just set"},
		Cooktime: 25,
		Level:    models.LevelEasy,
		Calories: 420,
		Serves:   2,
	})
	if err != nil {
		log.Fatalf("Failed to seed recipe: %v", err)
	}

	log.Println("Seed data created")
}
