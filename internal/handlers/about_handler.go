package handlers

import (
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/markdown"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AboutHandler serves the single-row profile entity
type AboutHandler struct {
	aboutRepository repositories.AboutRepository
	jwtSecret       string
}

// NewAboutHandler creates a new AboutHandler
func NewAboutHandler(aboutRepo repositories.AboutRepository, jwtSecret string) *AboutHandler {
	return &AboutHandler{
		aboutRepository: aboutRepo,
		jwtSecret:       jwtSecret,
	}
}

// RegisterAboutRoutes registers about-profile routes
func (h *AboutHandler) RegisterAboutRoutes(g *echo.Group) {
	g.GET("/about", h.GetAbout)
	g.PUT("/about", h.UpdateAbout, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
}

type aboutResponse struct {
	models.About
	ContentHTML string `json:"content_html,omitempty"`
}

// GetAbout returns the profile with its content rendered
func (h *AboutHandler) GetAbout(c echo.Context) error {
	about, err := h.aboutRepository.GetAbout()
	if err != nil {
		return apperrors.NotFound("about profile not set")
	}
	return c.JSON(http.StatusOK, aboutResponse{
		About:       *about,
		ContentHTML: markdown.Render(about.Content),
	})
}

// UpdateAbout replaces the profile row (admin only)
func (h *AboutHandler) UpdateAbout(c echo.Context) error {
	var req models.UpdateAboutRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	about := &models.About{
		Title:        req.Title,
		Content:      req.Content,
		ProfileImage: req.ProfileImage,
		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
	}
	if err := h.aboutRepository.UpsertAbout(about); err != nil {
		return apperrors.Internal("failed to update about profile", err)
	}

	return c.JSON(http.StatusOK, about)
}
