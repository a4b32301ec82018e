package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateAchievement_ParsesDateAchieved(t *testing.T) {
	env := setupTestServer(t)
	admin := env.createUser(t, "admin", true)

	body := models.CreateAchievementRequest{
		Title:        "AWS Certified",
		Description:  "Solutions Architect",
		DateAchieved: "2024-06-15",
		Organization: "Amazon",
		IsPublished:  true,
	}
	rec := env.doRequest(t, http.MethodPost, "/api/achievements", tokenFor(t, admin), body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AchievementResponse
	decodeJSON(t, rec, &resp)
	if assert.NotNil(t, resp.DateAchieved) {
		assert.Equal(t, "2024-06-15", resp.DateAchieved.Format("2006-01-02"))
	}
	assert.Equal(t, "Amazon", resp.Organization)
}

func TestCreateAchievement_RejectsBadDate(t *testing.T) {
	env := setupTestServer(t)
	admin := env.createUser(t, "admin", true)

	body := models.CreateAchievementRequest{
		Title:        "AWS Certified",
		Description:  "Solutions Architect",
		DateAchieved: "15/06/2024",
	}
	rec := env.doRequest(t, http.MethodPost, "/api/achievements", tokenFor(t, admin), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorKind(t, rec))
}

func TestGetAchievement_UnpublishedHiddenFromAnon(t *testing.T) {
	env := setupTestServer(t)
	admin := env.createUser(t, "admin", true)
	achievement := env.createAchievement(t, "Draft Cert", false)
	path := fmt.Sprintf("/api/achievements/%d", achievement.ID)

	rec := env.doRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doRequest(t, http.MethodGet, path, tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListAchievements_CountsAttached(t *testing.T) {
	env := setupTestServer(t)
	user := env.createUser(t, "alice", false)
	achievement := env.createAchievement(t, "Cert", true)

	env.db.Create(&models.Like{UserID: user.ID, TargetType: models.TargetAchievement, TargetID: achievement.ID})
	env.db.Create(&models.Comment{UserID: user.ID, TargetType: models.TargetAchievement, TargetID: achievement.ID, Content: "congrats"})

	rec := env.doRequest(t, http.MethodGet, "/api/achievements", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []models.AchievementResponse `json:"items"`
	}
	decodeJSON(t, rec, &resp)
	if assert.Len(t, resp.Items, 1) {
		assert.Equal(t, int64(1), resp.Items[0].LikesCount)
		assert.Equal(t, int64(1), resp.Items[0].CommentsCount)
	}
}
