package repositories

import (
	"testing"

	"github.com/alexporto/portfolio-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createTestUser(db *gorm.DB, username string, admin bool) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		FirstName:    "Test",
		LastName:     "User",
		IsAdmin:      admin,
		IsActive:     true,
	}
	db.Create(user)
	return user
}

func createTestProject(db *gorm.DB, title string, published bool) *models.Project {
	project := &models.Project{
		Title:       title,
		Slug:        models.GenerateSlug(title),
		Description: "A test project",
		Content:     "# Details\n\nSome **content**.",
		IsPublished: published,
	}
	db.Create(project)
	return project
}

func createTestAchievement(db *gorm.DB, title string, published bool) *models.Achievement {
	achievement := &models.Achievement{
		Title:       title,
		Description: "A test achievement",
		IsPublished: published,
	}
	db.Create(achievement)
	return achievement
}
