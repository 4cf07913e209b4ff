package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/config"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/api"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/database"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/router"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/server"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
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
	comments := store.NewCommentStore(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	userService := service.NewUserService(users, recipes)
	recipeService := service.NewRecipeService(recipes, users)
	followService := service.NewFollowService(users)
	engagementService := service.NewEngagementService(users, recipes)
	favoriteService := service.NewFavoriteService(users, recipes)
	commentService := service.NewCommentService(comments, recipes)

	// Rate limiting is best effort: the API runs without it when Redis is
	// unreachable.
	var recipeLimiter, commentLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: rate limiting disabled, Redis unavailable: %v", err)
	} else {
		recipeLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		commentLimiter = middleware.NewCommentRateLimiter(redisClient)
	}

	// Image upload is optional as well; it needs S3 credentials.
	var imageHandler *api.ImageHandler
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("Warning: image upload disabled: %v", err)
	} else {
		imageHandler = api.NewImageHandler(service.NewImageService(s3Cfg), authService)
	}

	engine := router.SetupRouter(router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		User:    api.NewUserHandler(userService, recipeService, authService, recipeLimiter),
		Recipe:  api.NewRecipeHandler(recipeService, userService, authService),
		Social:  api.NewSocialHandler(followService, engagementService, favoriteService, authService),
		Comment: api.NewCommentHandler(commentService, recipeService, userService, authService, commentLimiter),
		Image:   imageHandler,
	}, cfg.AllowedOrigins)

	srv := server.New(engine, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
