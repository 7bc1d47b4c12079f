// Package database opens the document store and migrates its collections.
package database

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"ecolearn/internal/config"
	"ecolearn/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConfigured is returned when the connection string or database name is missing.
var ErrNotConfigured = errors.New("database configuration missing")

// Open connects to the configured store and migrates the user, post and
// calendar collections.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.StoreConfigured() {
		return nil, ErrNotConfigured
	}

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.DatabaseDriver) {
	case "postgres":
		dsn, err := postgresDSN(cfg.DatabaseDSN, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	case "sqlite":
		// The DSN names the file; the database identifier has no meaning for SQLite.
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Printf("Connected to %s database %q", cfg.DatabaseDriver, cfg.DatabaseName)
	return db, nil
}

// Migrate creates or updates the tables backing every collection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.CalendarEvent{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}

// postgresDSN points the connection string at the named database. Both URL
// and keyword/value connection strings are accepted.
func postgresDSN(dsn, name string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_DSN: %w", err)
		}
		u.Path = "/" + name
		return u.String(), nil
	}
	return fmt.Sprintf("%s dbname=%s", strings.TrimSpace(dsn), name), nil
}
