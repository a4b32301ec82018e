package handlers

import (
	"net/http"
	"testing"

	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func registerBody(username string) models.RegisterRequest {
	return models.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		FirstName: username,
		LastName:  "Tester",
	}
}

func TestRegister(t *testing.T) {
	env := setupTestServer(t)
	admin := env.createUser(t, "admin", true)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/register", "", registerBody("alice"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.False(t, resp.User.IsAdmin)

	// The password hash must never appear in the payload.
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.Empty(t, resp.User.PasswordHash)

	notifications := env.notificationsFor(t, admin.ID)
	if assert.Len(t, notifications, 1) {
		assert.Equal(t, models.NotificationNewUser, notifications[0].Type)
		assert.Equal(t, resp.User.ID, *notifications[0].ActorID)
	}

	// The fresh token works against a protected route.
	rec = env.doRequest(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	env := setupTestServer(t)
	env.createUser(t, "alice", false)

	body := registerBody("different")
	body.Email = "alice@example.com"
	rec := env.doRequest(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", errorKind(t, rec))

	rec = env.doRequest(t, http.MethodPost, "/api/auth/register", "", registerBody("alice"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	env := setupTestServer(t)

	body := registerBody("alice")
	body.Password = "short"
	rec := env.doRequest(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorKind(t, rec))
}

func TestLogin(t *testing.T) {
	env := setupTestServer(t)
	env.createUser(t, "alice", false)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decodeJSON(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setupTestServer(t)
	env.createUser(t, "alice", false)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication_error", errorKind(t, rec))

	rec = env.doRequest(t, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_DisabledAccount(t *testing.T) {
	env := setupTestServer(t)
	user := env.createUser(t, "alice", false)
	env.db.Model(user).Update("is_active", false)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login", "",
		models.LoginRequest{Email: "alice@example.com", Password: "password123"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	env := setupTestServer(t)
	user := env.createUser(t, "alice", false)

	rec := env.doRequest(t, http.MethodGet, "/api/auth/me", tokenFor(t, user), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.User
	decodeJSON(t, rec, &resp)
	assert.Equal(t, user.ID, resp.ID)

	rec = env.doRequest(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doRequest(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
