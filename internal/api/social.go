package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
)

// SocialHandler exposes the follow graph and the like/favorite relations.
type SocialHandler struct {
	followService     *service.FollowService
	engagementService *service.EngagementService
	favoriteService   *service.FavoriteService
	authService       *service.AuthService
}

func NewSocialHandler(followService *service.FollowService, engagementService *service.EngagementService, favoriteService *service.FavoriteService, authService *service.AuthService) *SocialHandler {
	return &SocialHandler{
		followService:     followService,
		engagementService: engagementService,
		favoriteService:   favoriteService,
		authService:       authService,
	}
}

func (h *SocialHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:id/following", h.ListFollowing)
		users.GET("/:id/followers", h.ListFollowers)
		users.GET("/:id/favorites", h.ListFavorites)
		users.POST("/:id/follow", middleware.AuthMiddleware(h.authService), h.Follow)
		users.DELETE("/:id/follow", middleware.AuthMiddleware(h.authService), h.Unfollow)
	}

	recipes := router.Group("/recipes")
	recipes.Use(middleware.AuthMiddleware(h.authService))
	{
		recipes.POST("/:id/like", h.Like)
		recipes.DELETE("/:id/like", h.Unlike)
		recipes.POST("/:id/favorite", h.Favorite)
		recipes.DELETE("/:id/favorite", h.Unfavorite)
	}
}

func (h *SocialHandler) Follow(c *gin.Context) {
	callerID, targetID, ok := callerAndParam(c, "invalid user id")
	if !ok {
		return
	}

	user, err := h.followService.Follow(c.Request.Context(), callerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following_list": user.FollowingList})
}

func (h *SocialHandler) Unfollow(c *gin.Context) {
	callerID, targetID, ok := callerAndParam(c, "invalid user id")
	if !ok {
		return
	}

	user, err := h.followService.Unfollow(c.Request.Context(), callerID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following_list": user.FollowingList})
}

func (h *SocialHandler) ListFollowing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	users, err := h.followService.Following(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": toUserSummaries(users)})
}

func (h *SocialHandler) ListFollowers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	users, err := h.followService.Followers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"followers": toUserSummaries(users)})
}

func (h *SocialHandler) Like(c *gin.Context) {
	callerID, recipeID, ok := callerAndParam(c, "invalid recipe id")
	if !ok {
		return
	}

	recipe, err := h.engagementService.Like(c.Request.Context(), callerID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": recipe.Likes})
}

func (h *SocialHandler) Unlike(c *gin.Context) {
	callerID, recipeID, ok := callerAndParam(c, "invalid recipe id")
	if !ok {
		return
	}

	recipe, err := h.engagementService.Unlike(c.Request.Context(), callerID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": recipe.Likes})
}

func (h *SocialHandler) Favorite(c *gin.Context) {
	callerID, recipeID, ok := callerAndParam(c, "invalid recipe id")
	if !ok {
		return
	}

	user, err := h.favoriteService.AddFavorite(c.Request.Context(), callerID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite_list": user.FavoriteList})
}

func (h *SocialHandler) Unfavorite(c *gin.Context) {
	callerID, recipeID, ok := callerAndParam(c, "invalid recipe id")
	if !ok {
		return
	}

	user, err := h.favoriteService.RemoveFavorite(c.Request.Context(), callerID, recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite_list": user.FavoriteList})
}

func (h *SocialHandler) ListFavorites(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	recipes, err := h.favoriteService.Favorites(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": toRecipeSummaries(recipes)})
}

// callerAndParam extracts the authenticated caller and the :id route param.
func callerAndParam(c *gin.Context, badIDMessage string) (callerID, paramID uuid.UUID, ok bool) {
	paramID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": badIDMessage})
		return uuid.Nil, uuid.Nil, false
	}

	callerID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, uuid.Nil, false
	}
	return callerID, paramID, true
}
