package middleware

import (
	"strings"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Principal is the acting identity established for a request.
type Principal struct {
	UserID  uint
	IsAdmin bool
}

// PrincipalFrom returns the principal set by the auth middleware, if any.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

func parseToken(c echo.Context, secret string) (*models.JwtCustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.Unauthorized("missing Authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, apperrors.Unauthorized("invalid Authorization header format")
	}

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthorized("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid token and stores the principal
// in the request context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseToken(c, secret)
			if err != nil {
				return err
			}
			c.Set(principalKey, Principal{UserID: claims.UserID, IsAdmin: claims.IsAdmin})
			return next(c)
		}
	}
}

// OptionalAuth stores a principal when a valid token is supplied and lets the
// request through either way. Public reads use it so the admin can see
// unpublished items.
func OptionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "" {
				if claims, err := parseToken(c, secret); err == nil {
					c.Set(principalKey, Principal{UserID: claims.UserID, IsAdmin: claims.IsAdmin})
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return apperrors.Unauthorized("authentication required")
			}
			if !principal.IsAdmin {
				return apperrors.Forbidden("admin access required")
			}
			return next(c)
		}
	}
}
