package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/middleware"
	"github.com/MazenSamehR/Recipe-and-Meal-planning/internal/service"
)

// maxImageSize caps uploads at 5 MiB.
const maxImageSize = 5 << 20

type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{imageService: imageService, authService: authService}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", middleware.AuthMiddleware(h.authService), h.Upload)
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PNG and JPEG images are supported"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, contentType, "recipe-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
