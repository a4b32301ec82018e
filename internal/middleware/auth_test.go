package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uint, admin bool, expiresIn time.Duration) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:  userID,
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func invoke(authHeader string, mw ...echo.MiddlewareFunc) (Principal, bool, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var principal Principal
	var found bool
	handler := func(c echo.Context) error {
		principal, found = PrincipalFrom(c)
		return nil
	}
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return principal, found, handler(c)
}

func TestRequireAuth(t *testing.T) {
	token := signToken(t, testSecret, 7, false, time.Hour)

	principal, found, err := invoke("Bearer "+token, RequireAuth(testSecret))
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint(7), principal.UserID)
	assert.False(t, principal.IsAdmin)
}

func TestRequireAuth_Rejections(t *testing.T) {
	expired := signToken(t, testSecret, 7, false, -time.Hour)
	foreign := signToken(t, "other-secret", 7, false, time.Hour)

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
		"expired":        "Bearer " + expired,
		"wrong secret":   "Bearer " + foreign,
	} {
		_, _, err := invoke(header, RequireAuth(testSecret))
		var appErr *apperrors.Error
		if assert.ErrorAs(t, err, &appErr, name) {
			assert.Equal(t, apperrors.KindAuthentication, appErr.Kind, name)
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	token := signToken(t, testSecret, 3, true, time.Hour)

	// With a valid token the principal is established.
	principal, found, err := invoke("Bearer "+token, OptionalAuth(testSecret))
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, principal.IsAdmin)

	// Without one the request still goes through, anonymously.
	_, found, err = invoke("", OptionalAuth(testSecret))
	assert.NoError(t, err)
	assert.False(t, found)

	// A bad token degrades to anonymous rather than failing the request.
	_, found, err = invoke("Bearer garbage", OptionalAuth(testSecret))
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRequireAdmin(t *testing.T) {
	adminToken := signToken(t, testSecret, 1, true, time.Hour)
	userToken := signToken(t, testSecret, 2, false, time.Hour)

	_, _, err := invoke("Bearer "+adminToken, RequireAuth(testSecret), RequireAdmin())
	assert.NoError(t, err)

	_, _, err = invoke("Bearer "+userToken, RequireAuth(testSecret), RequireAdmin())
	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperrors.KindAuthorization, appErr.Kind)
	}

	// RequireAdmin alone never sees a principal.
	_, _, err = invoke("", RequireAdmin())
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperrors.KindAuthentication, appErr.Kind)
	}
}
