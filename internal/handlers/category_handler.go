package handlers

import (
	"errors"
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CategoryHandler handles HTTP requests related to categories
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
	jwtSecret          string
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository, jwtSecret string) *CategoryHandler {
	return &CategoryHandler{
		categoryRepository: categoryRepo,
		jwtSecret:          jwtSecret,
	}
}

// RegisterCategoryRoutes registers category-related routes
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group) {
	admin := []echo.MiddlewareFunc{middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin()}
	g.GET("/categories", h.GetCategories)
	g.POST("/categories", h.CreateCategory, admin...)
	g.PUT("/categories/:id", h.UpdateCategory, admin...)
	g.DELETE("/categories/:id", h.DeleteCategory, admin...)
}

// GetCategories returns all categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryRepository.GetCategories()
	if err != nil {
		return apperrors.Internal("failed to list categories", err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category (admin only)
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req models.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := h.categoryRepository.CreateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("category name already exists")
		}
		return apperrors.Internal("failed to create category", err)
	}

	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates an existing category (admin only)
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	category, err := h.categoryRepository.GetCategoryByID(id)
	if err != nil {
		return apperrors.NotFound("category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := h.categoryRepository.UpdateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("category name already exists")
		}
		return apperrors.Internal("failed to update category", err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category; items that referenced it keep no category (admin only)
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.categoryRepository.GetCategoryByID(id); err != nil {
		return apperrors.NotFound("category not found")
	}
	if err := h.categoryRepository.DeleteCategory(id); err != nil {
		return apperrors.Internal("failed to delete category", err)
	}

	return c.NoContent(http.StatusNoContent)
}
