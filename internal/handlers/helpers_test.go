package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/alexporto/portfolio-backend/internal/validators"
	"github.com/alexporto/portfolio-backend/pkg/config"
	"github.com/alexporto/portfolio-backend/pkg/mailer"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	echo *echo.Echo
	db   *gorm.DB

	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

// setupTestServer wires the full API against an in-memory database. Mail is
// unconfigured, so sends are silent no-ops.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.Achievement{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
		&models.About{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	userRepo := repositories.NewPostgresUserRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	projectRepo := repositories.NewPostgresProjectRepository(db)
	achievementRepo := repositories.NewPostgresAchievementRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	statsRepo := repositories.NewPostgresStatsRepository(db)
	aboutRepo := repositories.NewPostgresAboutRepository(db)

	mail := mailer.New(&config.Config{})

	api := e.Group("/api")
	NewAuthHandler(userRepo, notificationRepo, testJWTSecret).RegisterAuthRoutes(api.Group("/auth"))
	NewUserHandler(userRepo, testJWTSecret).RegisterUserRoutes(api)
	NewProjectHandler(projectRepo, likeRepo, commentRepo, testJWTSecret).RegisterProjectRoutes(api)
	NewAchievementHandler(achievementRepo, likeRepo, commentRepo, testJWTSecret).RegisterAchievementRoutes(api)
	NewCategoryHandler(categoryRepo, testJWTSecret).RegisterCategoryRoutes(api)
	NewLikeHandler(likeRepo, projectRepo, achievementRepo, userRepo, notificationRepo, testJWTSecret).RegisterLikeRoutes(api)
	NewCommentHandler(commentRepo, projectRepo, achievementRepo, userRepo, notificationRepo, mail, testJWTSecret).RegisterCommentRoutes(api)
	NewNotificationHandler(notificationRepo, userRepo, testJWTSecret).RegisterNotificationRoutes(api)
	NewStatsHandler(statsRepo).RegisterStatsRoutes(api)
	NewAboutHandler(aboutRepo, testJWTSecret).RegisterAboutRoutes(api)

	return &testEnv{
		echo:             e,
		db:               db,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (env *testEnv) createUser(t *testing.T, username string, admin bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		FirstName:    username,
		LastName:     "Tester",
		IsAdmin:      admin,
		IsActive:     true,
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func (env *testEnv) createProject(t *testing.T, title string, published bool) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:       title,
		Slug:        models.GenerateSlug(title),
		Description: "A test project",
		Content:     "# Details\n\nSome **content**.",
		IsPublished: published,
	}
	if err := env.db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func (env *testEnv) createAchievement(t *testing.T, title string, published bool) *models.Achievement {
	t.Helper()
	achievement := &models.Achievement{
		Title:       title,
		Description: "A test achievement",
		IsPublished: published,
	}
	if err := env.db.Create(achievement).Error; err != nil {
		t.Fatalf("failed to create achievement: %v", err)
	}
	return achievement
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// doRequest performs a request against the test server. token may be empty
// for anonymous calls; body may be a raw string or any JSON-marshalable value.
func (env *testEnv) doRequest(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("failed to marshal body: %v", err)
			}
			reader = strings.NewReader(string(b))
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// errorKind extracts the taxonomy kind from an error response envelope.
func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeJSON(t, rec, &envelope)
	return envelope.Error.Kind
}

func (env *testEnv) notificationsFor(t *testing.T, recipientID uint) []models.Notification {
	t.Helper()
	var notifications []models.Notification
	if err := env.db.Where("recipient_id = ?", recipientID).Find(&notifications).Error; err != nil {
		t.Fatalf("failed to load notifications: %v", err)
	}
	return notifications
}
