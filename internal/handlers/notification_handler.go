package handlers

import (
	"net/http"
	"strconv"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
	jwtSecret              string
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository, jwtSecret string) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: notifRepo,
		userRepository:         userRepo,
		jwtSecret:              jwtSecret,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	auth := middleware.RequireAuth(h.jwtSecret)
	g.GET("/notifications", h.GetNotifications, auth)
	g.GET("/notifications/unread-count", h.GetUnreadCount, auth)
	g.PUT("/notifications/:id/read", h.MarkAsRead, auth)
	g.PUT("/notifications/read-all", h.MarkAllAsRead, auth)
	g.DELETE("/notifications/:id", h.DeleteNotification, auth)
}

func (h *NotificationHandler) enrichNotifications(notifications []models.Notification) []models.NotificationResponse {
	enriched := make([]models.NotificationResponse, len(notifications))
	userCache := make(map[uint]*models.UserCompact)

	for i, n := range notifications {
		enriched[i] = models.NotificationResponse{Notification: n}
		if n.ActorID == nil {
			continue
		}
		if actor, ok := userCache[*n.ActorID]; ok {
			enriched[i].Actor = actor
		} else if user, err := h.userRepository.GetUserByID(*n.ActorID); err == nil {
			compact := user.ToCompact()
			userCache[*n.ActorID] = &compact
			enriched[i].Actor = &compact
		}
	}
	return enriched
}

// GetNotifications returns the admin's notifications, newest first.
// Non-admins get a denied outcome, not an empty list.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if !principal.IsAdmin {
		return apperrors.Forbidden("notifications are admin-only")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	notifications, total, err := h.notificationRepository.GetByRecipientID(principal.UserID, page, limit)
	if err != nil {
		return apperrors.Internal("failed to list notifications", err)
	}

	enriched := h.enrichNotifications(notifications)
	return c.JSON(http.StatusOK, models.NewPaginatedResponse(enriched, total, page, limit))
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if !principal.IsAdmin {
		return apperrors.Forbidden("notifications are admin-only")
	}

	count, err := h.notificationRepository.GetUnreadCount(principal.UserID)
	if err != nil {
		return apperrors.Internal("failed to count notifications", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks one notification read. Idempotent: re-reading an already
// read notification succeeds unchanged.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationRepository.GetNotificationByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NotFound("notification not found")
		}
		return apperrors.Internal("failed to load notification", err)
	}

	if notification.RecipientID != principal.UserID {
		return apperrors.Forbidden("not your notification")
	}

	if !notification.IsRead {
		if err := h.notificationRepository.MarkAsRead(id); err != nil {
			return apperrors.Internal("failed to mark notification read", err)
		}
		notification.IsRead = true
	}

	return c.JSON(http.StatusOK, notification)
}

// MarkAllAsRead marks every unread notification of the caller read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if !principal.IsAdmin {
		return apperrors.Forbidden("notifications are admin-only")
	}

	if err := h.notificationRepository.MarkAllAsRead(principal.UserID); err != nil {
		return apperrors.Internal("failed to mark notifications read", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteNotification removes a notification for good (explicit admin action)
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationRepository.GetNotificationByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NotFound("notification not found")
		}
		return apperrors.Internal("failed to load notification", err)
	}
	if notification.RecipientID != principal.UserID {
		return apperrors.Forbidden("not your notification")
	}

	if err := h.notificationRepository.DeleteNotification(id); err != nil {
		return apperrors.Internal("failed to delete notification", err)
	}
	return c.NoContent(http.StatusNoContent)
}
