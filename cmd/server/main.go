package main

import (
	"log"

	"github.com/alexporto/portfolio-backend/internal/apperrors"
	"github.com/alexporto/portfolio-backend/internal/bootstrap"
	"github.com/alexporto/portfolio-backend/internal/router"
	"github.com/alexporto/portfolio-backend/internal/validators"
	"github.com/alexporto/portfolio-backend/pkg/config"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Seed the admin account once, outside the request path
	if err := bootstrap.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
