package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/middleware"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles registration, login and the current-user lookup
type AuthHandler struct {
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	jwtSecret              string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository:         userRepo,
		notificationRepository: notifRepo,
		jwtSecret:              jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, middleware.RequireAuth(h.jwtSecret))
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return apperrors.Conflict("email already in use")
	}
	if _, err := h.userRepository.GetUserByUsername(req.Username); err == nil {
		return apperrors.Conflict("username already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		IsActive:     true,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("username or email already in use")
		}
		return apperrors.Internal("failed to create user", err)
	}

	notifyAdmin(h.userRepository, h.notificationRepository, user.ID, func(adminID uint) models.Notification {
		return models.Notification{
			Type:    models.NotificationNewUser,
			Title:   "New user registered",
			Message: fmt.Sprintf("%s %s registered on the portfolio", user.FirstName, user.LastName),
		}
	})

	token, err := h.generateJWT(user)
	if err != nil {
		return apperrors.Internal("failed to generate token", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// Login verifies credentials and issues a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.Validation(err.Error())
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return apperrors.Unauthorized("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return apperrors.Unauthorized("invalid email or password")
	}
	if !user.IsActive {
		return apperrors.Unauthorized("account is disabled")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return apperrors.Internal("failed to generate token", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// Me returns the authenticated user's record
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(principal.UserID)
	if err != nil {
		return apperrors.NotFound("user not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
