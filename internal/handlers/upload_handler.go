package handlers

import (
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/pkg/storage"
	"github.com/labstack/echo/v4"
)

// UploadHandler stores media files and returns their public URL
type UploadHandler struct {
	store     *storage.LocalStore
	jwtSecret string
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(store *storage.LocalStore, jwtSecret string) *UploadHandler {
	return &UploadHandler{store: store, jwtSecret: jwtSecret}
}

// RegisterUploadRoutes registers the upload route
func (h *UploadHandler) RegisterUploadRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
}

// Upload stores one file and returns the URL the catalog can record (admin only)
func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.Validation("file is required")
	}

	url, err := h.store.Save(file)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
