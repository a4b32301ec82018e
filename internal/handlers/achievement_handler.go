package handlers

import (
	"net/http"
	"time"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/markdown"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AchievementHandler handles HTTP requests for the achievement catalog
type AchievementHandler struct {
	achievementRepository repositories.AchievementRepository
	likeRepository        repositories.LikeRepository
	commentRepository     repositories.CommentRepository
	jwtSecret             string
}

// NewAchievementHandler creates a new AchievementHandler
func NewAchievementHandler(achievementRepo repositories.AchievementRepository, likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository, jwtSecret string) *AchievementHandler {
	return &AchievementHandler{
		achievementRepository: achievementRepo,
		likeRepository:        likeRepo,
		commentRepository:     commentRepo,
		jwtSecret:             jwtSecret,
	}
}

// RegisterAchievementRoutes registers achievement-related routes
func (h *AchievementHandler) RegisterAchievementRoutes(g *echo.Group) {
	g.GET("/achievements", h.ListAchievements)
	g.GET("/achievements/:id", h.GetAchievement, middleware.OptionalAuth(h.jwtSecret))
	g.POST("/achievements", h.CreateAchievement, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
	g.PUT("/achievements/:id", h.UpdateAchievement, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
	g.DELETE("/achievements/:id", h.DeleteAchievement, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
}

func (h *AchievementHandler) achievementResponse(achievement *models.Achievement, includeContent bool) models.AchievementResponse {
	target := models.AchievementTarget(achievement.ID)
	likes, _ := h.likeRepository.CountByTarget(target)
	comments, _ := h.commentRepository.CountByTarget(target)
	resp := achievement.ToResponse(likes, comments, includeContent)
	if includeContent {
		resp.ContentHTML = markdown.Render(achievement.Content)
	}
	return resp
}

// ListAchievements returns a page of published achievements
func (h *AchievementHandler) ListAchievements(c echo.Context) error {
	filter := parseCatalogFilter(c)

	achievements, total, err := h.achievementRepository.ListPublished(filter)
	if err != nil {
		return apperrors.Internal("failed to list achievements", err)
	}

	items := make([]models.AchievementResponse, 0, len(achievements))
	for i := range achievements {
		items = append(items, h.achievementResponse(&achievements[i], false))
	}

	return c.JSON(http.StatusOK, models.NewPaginatedResponse(items, total, filter.Page, filter.PerPage))
}

// GetAchievement returns one achievement including its long-form content
func (h *AchievementHandler) GetAchievement(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	achievement, err := h.achievementRepository.GetAchievementByID(id)
	if err != nil {
		return apperrors.NotFound("achievement not found")
	}
	if !achievement.IsPublished && !isAdminRequest(c) {
		return apperrors.NotFound("achievement not found")
	}

	return c.JSON(http.StatusOK, h.achievementResponse(achievement, true))
}

// CreateAchievement creates a new achievement (admin only)
func (h *AchievementHandler) CreateAchievement(c echo.Context) error {
	var req models.CreateAchievementRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	achievement := &models.Achievement{
		Title:          req.Title,
		Description:    req.Description,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		CertificateURL: req.CertificateURL,
		Organization:   req.Organization,
		IsPublished:    req.IsPublished,
		IsFeatured:     req.IsFeatured,
		CategoryID:     req.CategoryID,
	}
	if req.DateAchieved != "" {
		date, err := time.Parse("2006-01-02", req.DateAchieved)
		if err != nil {
			return apperrors.Validation("invalid date_achieved")
		}
		achievement.DateAchieved = &date
	}

	if err := h.achievementRepository.CreateAchievement(achievement); err != nil {
		return apperrors.Internal("failed to create achievement", err)
	}

	return c.JSON(http.StatusCreated, h.achievementResponse(achievement, true))
}

// UpdateAchievement applies the supplied fields to an existing achievement (admin only)
func (h *AchievementHandler) UpdateAchievement(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateAchievementRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	achievement, err := h.achievementRepository.GetAchievementByID(id)
	if err != nil {
		return apperrors.NotFound("achievement not found")
	}

	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Content != nil {
		achievement.Content = *req.Content
	}
	if req.ImageURL != nil {
		achievement.ImageURL = *req.ImageURL
	}
	if req.CertificateURL != nil {
		achievement.CertificateURL = *req.CertificateURL
	}
	if req.DateAchieved != nil {
		date, err := time.Parse("2006-01-02", *req.DateAchieved)
		if err != nil {
			return apperrors.Validation("invalid date_achieved")
		}
		achievement.DateAchieved = &date
	}
	if req.Organization != nil {
		achievement.Organization = *req.Organization
	}
	if req.IsPublished != nil {
		achievement.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		achievement.IsFeatured = *req.IsFeatured
	}
	if req.CategoryID != nil {
		achievement.CategoryID = req.CategoryID
	}
	achievement.Category = nil // re-resolved by the next read

	if err := h.achievementRepository.UpdateAchievement(achievement); err != nil {
		return apperrors.Internal("failed to update achievement", err)
	}

	return c.JSON(http.StatusOK, h.achievementResponse(achievement, true))
}

// DeleteAchievement removes an achievement and all comments and likes scoped to it (admin only)
func (h *AchievementHandler) DeleteAchievement(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.achievementRepository.GetAchievementByID(id); err != nil {
		return apperrors.NotFound("achievement not found")
	}
	if err := h.achievementRepository.DeleteAchievement(id); err != nil {
		return apperrors.Internal("failed to delete achievement", err)
	}

	return c.NoContent(http.StatusNoContent)
}
