package database

import (
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/feastbook/backend/internal/models"
	"github.com/feastbook/backend/migrations"
)

// RunMigrations brings the schema up to date. PostgreSQL uses the
// embedded goose migrations; SQLite (tests) uses GORM auto-migration.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		log.Printf("Using GORM auto-migration for SQLite")
		return db.AutoMigrate(
			&models.User{},
			&models.Recipe{},
			&models.Ingredient{},
			&models.Favorite{},
		)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("Database migrations completed")
	return nil
}
