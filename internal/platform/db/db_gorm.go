// Package db opens and migrates the relational store. The same schema
// runs on PostgreSQL (deployed) and embedded SQLite (local); the
// backend is chosen once at startup from configuration.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "tutor_backend/internal/feature/auth/domain/entity"
	contentadapters "tutor_backend/internal/feature/content/adapters"
	courseadapters "tutor_backend/internal/feature/courses/adapters"
	"tutor_backend/internal/platform/config"
)

const (
	connectDeadline = 60 * time.Second
	connectBackoff  = 3 * time.Second
)

// Open connects to the configured backend, retrying until the
// deadline. A connection failure past the deadline is returned to the
// caller, which treats it as fatal: the process must not serve
// without storage.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	var (
		db      *gorm.DB
		openErr error
	)
	deadline := time.Now().Add(connectDeadline)
	for {
		db, openErr = gorm.Open(dialector, &gorm.Config{})
		if openErr == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectDeadline, openErr)
		}
		slog.Warn("database connect failed, retrying", "error", openErr)
		time.Sleep(connectBackoff)
	}

	return db, nil
}

// Migrate creates or updates every table. It is idempotent and runs
// once during startup, before any request is served.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&authentity.PendingVerification{},
		&authentity.Session{},
		&courseadapters.CourseModel{},
		&contentadapters.LessonModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// dialectorFor picks the backend: PostgreSQL when a URL is configured,
// otherwise a SQLite file whose directory is created on first run.
func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	if cfg.URL != "" {
		slog.Info("using postgres backend")
		return postgres.Open(cfg.URL), nil
	}

	dir := filepath.Dir(cfg.SQLitePath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory %s: %w", dir, err)
		}
	}
	slog.Info("using sqlite backend", "path", cfg.SQLitePath)
	return sqlite.Open(cfg.SQLitePath), nil
}
