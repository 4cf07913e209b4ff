package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

type RecipeHandler struct {
	recipeService *service.RecipeService
	userService   *service.UserService
	authService   *service.AuthService
}

func NewRecipeHandler(recipeService *service.RecipeService, userService *service.UserService, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		userService:   userService,
		authService:   authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": toRecipeSummaries(recipes)})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"recipe": recipe}
	if chef, err := h.userService.Get(c.Request.Context(), recipe.ChefID); err == nil {
		resp["chef"] = toUserSummary(chef)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipe, ok := h.ownRecipe(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.recipeService.Update(c.Request.Context(), recipe.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"recipe":  updated,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipe, ok := h.ownRecipe(c)
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), recipe.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// ownRecipe loads the :id recipe and rejects callers other than its chef.
func (h *RecipeHandler) ownRecipe(c *gin.Context) (*models.Recipe, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return nil, false
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return nil, false
		}
		respondError(c, err)
		return nil, false
	}

	callerID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}
	if callerID != recipe.ChefID {
		respondError(c, service.ErrForbidden)
		return nil, false
	}
	return recipe, true
}
