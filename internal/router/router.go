package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/api"
)

// Handlers groups everything SetupRouter mounts under /api/v1.
type Handlers struct {
	Auth    *api.AuthHandler
	User    *api.UserHandler
	Recipe  *api.RecipeHandler
	Social  *api.SocialHandler
	Comment *api.CommentHandler
	Image   *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)
	h.User.RegisterRoutes(v1)
	h.Recipe.RegisterRoutes(v1)
	h.Social.RegisterRoutes(v1)
	h.Comment.RegisterRoutes(v1)
	if h.Image != nil {
		h.Image.RegisterRoutes(v1)
	}

	return router
}
