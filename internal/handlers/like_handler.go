package handlers

import (
	"fmt"
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/alexporto/portfolio-backend/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	projectRepository      repositories.ProjectRepository
	achievementRepository  repositories.AchievementRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	jwtSecret              string
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, projectRepo repositories.ProjectRepository,
	achievementRepo repositories.AchievementRepository, userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository, jwtSecret string) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		projectRepository:      projectRepo,
		achievementRepository:  achievementRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		jwtSecret:              jwtSecret,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/projects/:id/like", h.ToggleProjectLike, middleware.RequireAuth(h.jwtSecret))
	g.POST("/achievements/:id/like", h.ToggleAchievementLike, middleware.RequireAuth(h.jwtSecret))
	g.GET("/projects/:id/like", h.GetProjectLikeStatus, middleware.RequireAuth(h.jwtSecret))
	g.GET("/achievements/:id/like", h.GetAchievementLikeStatus, middleware.RequireAuth(h.jwtSecret))
}

// ToggleProjectLike flips the caller's like on a project
func (h *LikeHandler) ToggleProjectLike(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectRepository.GetProjectByID(id)
	if err != nil || !project.IsPublished {
		return apperrors.NotFound("project not found")
	}

	return h.toggle(c, models.ProjectTarget(id), project.Title)
}

// ToggleAchievementLike flips the caller's like on an achievement
func (h *LikeHandler) ToggleAchievementLike(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	achievement, err := h.achievementRepository.GetAchievementByID(id)
	if err != nil || !achievement.IsPublished {
		return apperrors.NotFound("achievement not found")
	}

	return h.toggle(c, models.AchievementTarget(id), achievement.Title)
}

func (h *LikeHandler) toggle(c echo.Context, target models.Target, title string) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	liked, err := h.likeRepository.Toggle(principal.UserID, target)
	if err != nil {
		return apperrors.Internal("failed to toggle like", err)
	}

	action := "unliked"
	if liked {
		action = "liked"
	}
	metrics.LikesToggled.WithLabelValues(string(target.Type), action).Inc()

	// Only a fresh like is worth telling the admin about.
	if liked {
		actor, actorErr := h.userRepository.GetUserByID(principal.UserID)
		if actorErr == nil {
			notifyAdmin(h.userRepository, h.notificationRepository, principal.UserID, func(adminID uint) models.Notification {
				return models.Notification{
					Type:       models.NotificationLike,
					Title:      "New like",
					Message:    fmt.Sprintf("%s liked the %s %q", actor.FirstName, target.Type, title),
					TargetType: &target.Type,
					TargetID:   &target.ID,
				}
			})
		}
	}

	count, err := h.likeRepository.CountByTarget(target)
	if err != nil {
		return apperrors.Internal("failed to count likes", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes_count": count})
}

// GetProjectLikeStatus reports whether the caller has liked a project
func (h *LikeHandler) GetProjectLikeStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectRepository.GetProjectByID(id)
	if err != nil || !project.IsPublished {
		return apperrors.NotFound("project not found")
	}

	return h.likeStatus(c, models.ProjectTarget(id))
}

// GetAchievementLikeStatus reports whether the caller has liked an achievement
func (h *LikeHandler) GetAchievementLikeStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	achievement, err := h.achievementRepository.GetAchievementByID(id)
	if err != nil || !achievement.IsPublished {
		return apperrors.NotFound("achievement not found")
	}

	return h.likeStatus(c, models.AchievementTarget(id))
}

func (h *LikeHandler) likeStatus(c echo.Context, target models.Target) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	liked, err := h.likeRepository.HasUserLiked(principal.UserID, target)
	if err != nil {
		return apperrors.Internal("failed to check like", err)
	}
	count, err := h.likeRepository.CountByTarget(target)
	if err != nil {
		return apperrors.Internal("failed to count likes", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes_count": count})
}
