package handlers

import (
	"log"
	"strconv"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/alexporto/portfolio-backend/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// requirePrincipal returns the acting principal or an authentication error.
func requirePrincipal(c echo.Context) (middleware.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return middleware.Principal{}, apperrors.Unauthorized("authentication required")
	}
	return principal, nil
}

// isAdminRequest reports whether the request carries an admin principal.
func isAdminRequest(c echo.Context) bool {
	principal, ok := middleware.PrincipalFrom(c)
	return ok && principal.IsAdmin
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.Validation("invalid " + name)
	}
	return uint(value), nil
}

func parseCatalogFilter(c echo.Context) models.CatalogFilter {
	var filter models.CatalogFilter
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))
	if raw := c.QueryParam("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if raw := c.QueryParam("featured"); raw != "" {
		filter.FeaturedOnly, _ = strconv.ParseBool(raw)
	}
	filter.Normalize()
	return filter
}

// notifyAdmin records an admin notification for an engagement or identity
// event. The admin's own activity is never reported back to them, and a
// failed write is logged rather than failing the request that caused it.
func notifyAdmin(users repositories.UserRepository, notifications repositories.NotificationRepository,
	actorID uint, build func(adminID uint) models.Notification) {
	admin, err := users.GetAdmin()
	if err != nil || admin.ID == actorID {
		return
	}

	notification := build(admin.ID)
	notification.RecipientID = admin.ID
	notification.ActorID = &actorID
	if err := notifications.CreateNotification(&notification); err != nil {
		log.Printf("failed to create %s notification: %v", notification.Type, err)
		return
	}
	metrics.NotificationsCreated.WithLabelValues(string(notification.Type)).Inc()
}
