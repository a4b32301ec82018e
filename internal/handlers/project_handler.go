package handlers

import (
	"fmt"
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/markdown"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProjectHandler handles HTTP requests for the project catalog
type ProjectHandler struct {
	projectRepository repositories.ProjectRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
	jwtSecret         string
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectRepo repositories.ProjectRepository, likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository, jwtSecret string) *ProjectHandler {
	return &ProjectHandler{
		projectRepository: projectRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
		jwtSecret:         jwtSecret,
	}
}

// RegisterProjectRoutes registers project-related routes
func (h *ProjectHandler) RegisterProjectRoutes(g *echo.Group) {
	g.GET("/projects", h.ListProjects)
	g.GET("/projects/:id", h.GetProject, middleware.OptionalAuth(h.jwtSecret))
	g.POST("/projects", h.CreateProject, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
	g.PUT("/projects/:id", h.UpdateProject, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
	g.DELETE("/projects/:id", h.DeleteProject, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
}

func (h *ProjectHandler) projectResponse(project *models.Project, includeContent bool) models.ProjectResponse {
	target := models.ProjectTarget(project.ID)
	likes, _ := h.likeRepository.CountByTarget(target)
	comments, _ := h.commentRepository.CountByTarget(target)
	resp := project.ToResponse(likes, comments, includeContent)
	if includeContent {
		resp.ContentHTML = markdown.Render(project.Content)
	}
	return resp
}

// ListProjects returns a page of published projects
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	filter := parseCatalogFilter(c)

	projects, total, err := h.projectRepository.ListPublished(filter)
	if err != nil {
		return apperrors.Internal("failed to list projects", err)
	}

	items := make([]models.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, h.projectResponse(&projects[i], false))
	}

	return c.JSON(http.StatusOK, models.NewPaginatedResponse(items, total, filter.Page, filter.PerPage))
}

// GetProject returns one project including its long-form content. Unpublished
// projects answer "not found" to everyone but the admin, so their existence
// never leaks.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectRepository.GetProjectByID(id)
	if err != nil {
		return apperrors.NotFound("project not found")
	}
	if !project.IsPublished && !isAdminRequest(c) {
		return apperrors.NotFound("project not found")
	}

	return c.JSON(http.StatusOK, h.projectResponse(project, true))
}

// CreateProject creates a new project (admin only)
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	slug, err := h.uniqueSlug(models.GenerateSlug(req.Title))
	if err != nil {
		return apperrors.Internal("failed to generate slug", err)
	}

	project := &models.Project{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		DemoURL:     req.DemoURL,
		GithubURL:   req.GithubURL,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		CategoryID:  req.CategoryID,
	}
	project.SetTechnologies(req.Technologies)

	if err := h.projectRepository.CreateProject(project); err != nil {
		return apperrors.Internal("failed to create project", err)
	}

	return c.JSON(http.StatusCreated, h.projectResponse(project, true))
}

// UpdateProject applies the supplied fields to an existing project (admin only)
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	project, err := h.projectRepository.GetProjectByID(id)
	if err != nil {
		return apperrors.NotFound("project not found")
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Content != nil {
		project.Content = *req.Content
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.DemoURL != nil {
		project.DemoURL = *req.DemoURL
	}
	if req.GithubURL != nil {
		project.GithubURL = *req.GithubURL
	}
	if req.Technologies != nil {
		project.SetTechnologies(*req.Technologies)
	}
	if req.IsPublished != nil {
		project.IsPublished = *req.IsPublished
	}
	if req.IsFeatured != nil {
		project.IsFeatured = *req.IsFeatured
	}
	if req.CategoryID != nil {
		project.CategoryID = req.CategoryID
	}
	project.Category = nil // re-resolved by the next read

	if err := h.projectRepository.UpdateProject(project); err != nil {
		return apperrors.Internal("failed to update project", err)
	}

	return c.JSON(http.StatusOK, h.projectResponse(project, true))
}

// DeleteProject removes a project and all comments and likes scoped to it (admin only)
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.projectRepository.GetProjectByID(id); err != nil {
		return apperrors.NotFound("project not found")
	}
	if err := h.projectRepository.DeleteProject(id); err != nil {
		return apperrors.Internal("failed to delete project", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// uniqueSlug suffixes the base slug deterministically until it is free:
// demo, demo-2, demo-3, ...
func (h *ProjectHandler) uniqueSlug(base string) (string, error) {
	if base == "" {
		base = "project"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := h.projectRepository.SlugExists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
