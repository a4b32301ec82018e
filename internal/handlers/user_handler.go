package handlers

import (
	"net/http"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles admin account management
type UserHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, jwtSecret string) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		jwtSecret:      jwtSecret,
	}
}

// RegisterUserRoutes registers user management routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.PUT("/users/:id/status", h.ToggleUserStatus, middleware.RequireAuth(h.jwtSecret), middleware.RequireAdmin())
}

// ToggleUserStatus flips a user's active flag (admin only). A disabled user
// cannot log in; their comments and likes stay in place.
func (h *UserHandler) ToggleUserStatus(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		return apperrors.NotFound("user not found")
	}
	if user.IsAdmin {
		return apperrors.Forbidden("admin accounts cannot be disabled")
	}

	user.IsActive = !user.IsActive
	if err := h.userRepository.UpdateUser(user); err != nil {
		return apperrors.Internal("failed to update user", err)
	}

	return c.JSON(http.StatusOK, user)
}
