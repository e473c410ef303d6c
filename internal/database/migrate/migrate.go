// Package migrate applies the SQL schema migrations.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appconfig "github.com/DragonCaesar2004/Code-review-assigner/internal/config"
)

// Path returns the migrations directory, overridable via MIGRATIONS_PATH.
func Path() string {
	return appconfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Up applies all pending migrations against db.
func Up(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	dir, err := filepath.Abs(Path())
	if err != nil {
		return fmt.Errorf("resolve migrations path: %w", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory %s does not exist", dir)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
