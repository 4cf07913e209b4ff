package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/types"
)

type CommentHandler struct {
	commentService *service.CommentService
	recipeService  *service.RecipeService
	userService    *service.UserService
	authService    *service.AuthService
	commentLimiter *middleware.RateLimiter
}

func NewCommentHandler(commentService *service.CommentService, recipeService *service.RecipeService, userService *service.UserService, authService *service.AuthService, commentLimiter *middleware.RateLimiter) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		recipeService:  recipeService,
		userService:    userService,
		authService:    authService,
		commentLimiter: commentLimiter,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/:id/comments", h.ListComments)
	router.POST("/recipes/:id/comments", middleware.AuthMiddleware(h.authService), h.commentLimiter.RateLimitMiddleware(), h.CreateComment)
	router.DELETE("/comments/:id", middleware.AuthMiddleware(h.authService), h.DeleteComment)
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	comments, err := h.commentService.ForRecipe(c.Request.Context(), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		view := CommentView{
			ID:        comment.ID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if author, err := h.userService.Get(c.Request.Context(), comment.AuthorID); err == nil {
			view.Author = toUserSummary(author)
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"comments": views})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	callerID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), recipeID, callerID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeleteComment lets the comment's author or the recipe's chef remove it.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	callerID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	if comment.AuthorID != callerID {
		recipe, err := h.recipeService.Get(c.Request.Context(), comment.RecipeID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respondError(c, err)
			return
		}
		if recipe == nil || recipe.ChefID != callerID {
			respondError(c, service.ErrForbidden)
			return
		}
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
