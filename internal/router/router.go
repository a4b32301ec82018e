package router

import (
	"log"

	"github.com/alexporto/portfolio-backend/internal/handlers"
	"github.com/alexporto/portfolio-backend/internal/models"
	"github.com/alexporto/portfolio-backend/internal/repositories"
	"github.com/alexporto/portfolio-backend/pkg/config"
	"github.com/alexporto/portfolio-backend/pkg/mailer"
	"github.com/alexporto/portfolio-backend/pkg/metrics"
	"github.com/alexporto/portfolio-backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) error {
	err := db.AutoMigrate(
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
		return err
	}
	log.Println("Auto-migrations completed for all models.")

	// Health and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", metrics.Handler())

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	projectRepo := repositories.NewPostgresProjectRepository(db)
	achievementRepo := repositories.NewPostgresAchievementRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	statsRepo := repositories.NewPostgresStatsRepository(db)
	aboutRepo := repositories.NewPostgresAboutRepository(db)

	mail := mailer.New(cfg)
	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	e.Static("/uploads", store.Dir())

	api := e.Group("/api")
	secret := cfg.JWTSecret

	authHandler := handlers.NewAuthHandler(userRepo, notificationRepo, secret)
	authHandler.RegisterAuthRoutes(api.Group("/auth"))

	userHandler := handlers.NewUserHandler(userRepo, secret)
	userHandler.RegisterUserRoutes(api)
	log.Println("Auth routes configured.")

	projectHandler := handlers.NewProjectHandler(projectRepo, likeRepo, commentRepo, secret)
	projectHandler.RegisterProjectRoutes(api)

	achievementHandler := handlers.NewAchievementHandler(achievementRepo, likeRepo, commentRepo, secret)
	achievementHandler.RegisterAchievementRoutes(api)
	log.Println("Catalog routes configured.")

	categoryHandler := handlers.NewCategoryHandler(categoryRepo, secret)
	categoryHandler.RegisterCategoryRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, projectRepo, achievementRepo, userRepo, notificationRepo, secret)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, projectRepo, achievementRepo, userRepo, notificationRepo, mail, secret)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Engagement routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo, secret)
	notificationHandler.RegisterNotificationRoutes(api)

	statsHandler := handlers.NewStatsHandler(statsRepo)
	statsHandler.RegisterStatsRoutes(api)

	aboutHandler := handlers.NewAboutHandler(aboutRepo, secret)
	aboutHandler.RegisterAboutRoutes(api)

	uploadHandler := handlers.NewUploadHandler(store, secret)
	uploadHandler.RegisterUploadRoutes(api)

	log.Println("All routes configured.")
	return nil
}
