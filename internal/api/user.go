package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

type UserHandler struct {
	userService   *service.UserService
	recipeService *service.RecipeService
	authService   *service.AuthService
	recipeLimiter *middleware.RateLimiter
}

func NewUserHandler(userService *service.UserService, recipeService *service.RecipeService, authService *service.AuthService, recipeLimiter *middleware.RateLimiter) *UserHandler {
	return &UserHandler{
		userService:   userService,
		recipeService: recipeService,
		authService:   authService,
		recipeLimiter: recipeLimiter,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/recipes", h.ListUserRecipes)
		users.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateUser)
		users.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteUser)
		users.POST("/:id/recipes", middleware.AuthMiddleware(h.authService), h.recipeLimiter.RateLimitMiddleware(), h.CreateRecipe)
		users.POST("/:id/meals", middleware.AuthMiddleware(h.authService), h.PlanMeal)
		users.DELETE("/:id/meals/:slot", middleware.AuthMiddleware(h.authService), h.UnplanMeal)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": toUserSummaries(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.ownResource(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.ownResource(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) CreateRecipe(c *gin.Context) {
	id, ok := h.ownResource(c)
	if !ok {
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateForUser(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully",
		"recipe":  recipe,
	})
}

func (h *UserHandler) ListUserRecipes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	recipes, err := h.recipeService.ListByChef(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeSummaries(recipes)})
}

func (h *UserHandler) PlanMeal(c *gin.Context) {
	id, ok := h.ownResource(c)
	if !ok {
		return
	}

	var req types.PlanMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.PlanMeal(c.Request.Context(), id, req.Slot, req.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": user.Meals})
}

func (h *UserHandler) UnplanMeal(c *gin.Context) {
	id, ok := h.ownResource(c)
	if !ok {
		return
	}

	user, err := h.userService.UnplanMeal(c.Request.Context(), id, models.MealSlot(c.Param("slot")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": user.Meals})
}

// ownResource parses the :id param and rejects callers that are not that
// user.
func (h *UserHandler) ownResource(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}

	callerID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	if callerID != id {
		respondError(c, service.ErrForbidden)
		return uuid.Nil, false
	}
	return id, true
}
