// Package database manages the PostgreSQL connection lifecycle.
package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbconfig "github.com/DragonCaesar2004/Code-review-assigner/internal/database/config"
	"github.com/DragonCaesar2004/Code-review-assigner/internal/database/pool"
	"github.com/DragonCaesar2004/Code-review-assigner/pkg/retry"
)

// New connects to the database described by environment variables.
func New() (*gorm.DB, error) {
	return NewWithConfig(dbconfig.Load())
}

// NewWithConfig connects with the given configuration, retrying while the
// database is still coming up.
func NewWithConfig(cfg dbconfig.Config) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := retry.DoWithResult(ctx, dbconfig.LoadRetry(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	})
	if err != nil {
		return nil, cfg.SanitizeError(err)
	}

	if err := pool.Apply(db, pool.Default()); err != nil {
		return nil, err
	}
	return db, nil
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
