package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/models"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/store"
)

// respondError maps service failures to HTTP status codes. PartialUpdateError
// is checked before the sentinels because it can wrap them.
func respondError(c *gin.Context, err error) {
	var partialErr *service.PartialUpdateError
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &partialErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update could not be fully applied"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
