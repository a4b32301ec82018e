package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the relational store selected by the configuration.
// TranslateError is required: repositories rely on gorm.ErrDuplicatedKey to
// detect unique-constraint violations regardless of driver.
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	var err error
	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL not set (sqlite file path expected)")
		}
		db, err = gorm.Open(sqlite.Open(cfg.DBUrl), gormCfg)
	case "postgres":
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DATABASE_URL not set (postgres connection string expected)")
		}
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Printf("Successfully connected to %s!", cfg.DBDriver)
	return db, nil
}

// CloseDB closes the underlying connection pool.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v\n", err)
	} else {
		log.Println("Database connection closed.")
	}
}
