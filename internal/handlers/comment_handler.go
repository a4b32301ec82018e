package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/alexporto/portfolio-backend/pkg/mailer"
	"github.com/alexporto/portfolio-backend/pkg/metrics"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	projectRepository      repositories.ProjectRepository
	achievementRepository  repositories.AchievementRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	mailer                 *mailer.Mailer
	jwtSecret              string
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, projectRepo repositories.ProjectRepository,
	achievementRepo repositories.AchievementRepository, userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository, m *mailer.Mailer, jwtSecret string) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		projectRepository:      projectRepo,
		achievementRepository:  achievementRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		mailer:                 m,
		jwtSecret:              jwtSecret,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/projects/:id/comments", h.ListProjectComments)
	g.GET("/achievements/:id/comments", h.ListAchievementComments)
	g.POST("/projects/:id/comments", h.CreateProjectComment, middleware.RequireAuth(h.jwtSecret))
	g.POST("/achievements/:id/comments", h.CreateAchievementComment, middleware.RequireAuth(h.jwtSecret))
	g.PUT("/comments/:id", h.UpdateComment, middleware.RequireAuth(h.jwtSecret))
	g.DELETE("/comments/:id", h.DeleteComment, middleware.RequireAuth(h.jwtSecret))
}

// resolveTarget looks up the catalog item and returns its title; unpublished
// items are "not found" in comment context for everyone.
func (h *CommentHandler) resolveTarget(target models.Target) (string, error) {
	switch target.Type {
	case models.TargetProject:
		project, err := h.projectRepository.GetProjectByID(target.ID)
		if err != nil || !project.IsPublished {
			return "", apperrors.NotFound("project not found")
		}
		return project.Title, nil
	case models.TargetAchievement:
		achievement, err := h.achievementRepository.GetAchievementByID(target.ID)
		if err != nil || !achievement.IsPublished {
			return "", apperrors.NotFound("achievement not found")
		}
		return achievement.Title, nil
	default:
		return "", apperrors.Validation("invalid target type")
	}
}

// ListProjectComments returns the comments on a published project, newest first
func (h *CommentHandler) ListProjectComments(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	return h.list(c, models.ProjectTarget(id))
}

// ListAchievementComments returns the comments on a published achievement, newest first
func (h *CommentHandler) ListAchievementComments(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	return h.list(c, models.AchievementTarget(id))
}

func (h *CommentHandler) list(c echo.Context, target models.Target) error {
	if _, err := h.resolveTarget(target); err != nil {
		return err
	}

	comments, err := h.commentRepository.ListByTarget(target)
	if err != nil {
		return apperrors.Internal("failed to list comments", err)
	}

	responses := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].ToResponse())
	}
	return c.JSON(http.StatusOK, responses)
}

// CreateProjectComment creates a comment on a published project
func (h *CommentHandler) CreateProjectComment(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	return h.create(c, models.ProjectTarget(id))
}

// CreateAchievementComment creates a comment on a published achievement
func (h *CommentHandler) CreateAchievementComment(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}
	return h.create(c, models.AchievementTarget(id))
}

func (h *CommentHandler) create(c echo.Context, target models.Target) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	title, err := h.resolveTarget(target)
	if err != nil {
		return err
	}

	// A reply must thread under a comment on the same item.
	if req.ParentID != nil {
		parent, err := h.commentRepository.GetCommentByID(*req.ParentID)
		if err != nil {
			return apperrors.Validation("parent comment not found")
		}
		if parent.Target() != target {
			return apperrors.Validation("parent comment belongs to a different item")
		}
	}

	comment := &models.Comment{
		UserID:     principal.UserID,
		TargetType: target.Type,
		TargetID:   target.ID,
		ParentID:   req.ParentID,
		Content:    req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return apperrors.Internal("failed to create comment", err)
	}
	metrics.CommentsCreated.WithLabelValues(string(target.Type)).Inc()

	actor, actorErr := h.userRepository.GetUserByID(principal.UserID)
	if actorErr == nil {
		notifyAdmin(h.userRepository, h.notificationRepository, principal.UserID, func(adminID uint) models.Notification {
			return models.Notification{
				Type:       models.NotificationComment,
				Title:      "New comment",
				Message:    fmt.Sprintf("%s commented on the %s %q", actor.FirstName, target.Type, title),
				TargetType: &target.Type,
				TargetID:   &target.ID,
			}
		})

		// Best effort: a failed mail send is logged and swallowed, never
		// surfaced to the commenter.
		go func(itemTitle, name, content string) {
			if err := h.mailer.SendCommentNotification(itemTitle, name, content); err != nil {
				log.Printf("comment notification mail failed: %v", err)
			}
		}(title, actor.FirstName, comment.Content)
	}

	comment.Author = actor
	return c.JSON(http.StatusCreated, comment.ToResponse())
}

// UpdateComment updates an existing comment (author or admin)
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NotFound("comment not found")
		}
		return apperrors.Internal("failed to load comment", err)
	}

	if comment.UserID != principal.UserID && !principal.IsAdmin {
		return apperrors.Forbidden("you are not allowed to update this comment")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return apperrors.Internal("failed to update comment", err)
	}

	return c.JSON(http.StatusOK, comment.ToResponse())
}

// DeleteComment deletes a comment (author or admin)
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NotFound("comment not found")
		}
		return apperrors.Internal("failed to load comment", err)
	}

	if comment.UserID != principal.UserID && !principal.IsAdmin {
		return apperrors.Forbidden("you are not allowed to delete this comment")
	}

	if err := h.commentRepository.DeleteComment(id); err != nil {
		return apperrors.Internal("failed to delete comment", err)
	}

	return c.NoContent(http.StatusNoContent)
}
