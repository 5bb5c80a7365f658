// Package database owns the connections to PostgreSQL and Redis and the
// schema migrations.
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feastbook/backend/config"
)

// New opens the PostgreSQL connection. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey, which the
// services rely on for the email and favorite uniqueness invariants.
func New(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// The database may still be starting up alongside us; ping with a
	// bounded backoff before giving up.
	backoff := retry.WithMaxRetries(5, retry.NewConstant(time.Second))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		if err := sqlDB.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
