// Package testhelpers provides databases and fixtures for tests: an
// in-memory SQLite store for unit tests and a containerized PostgreSQL
// for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/feastbook/backend/internal/database"
	"github.com/feastbook/backend/internal/models"
)

var dbCounter int64

// SetupTestDatabase opens a fresh in-memory SQLite database with the
// full schema. TranslateError matches the production configuration so
// uniqueness violations behave the same way in tests.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection to the same in-memory database would
	// race with schema creation; keep it single-connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SetupPostgresDatabase starts a PostgreSQL container, applies the goose
// migrations and returns the connection. Tests calling it are skipped
// when docker is not installed.
func SetupPostgresDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postpass",
				"POSTGRES_DB":       "feastbook_test",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://postgres:postpass@%s:%s/feastbook_test?sslmode=disable",
						host, port.Port())
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postpass@%s:%s/feastbook_test?sslmode=disable",
		host, mappedPort.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateTestUser inserts a user with a real bcrypt hash of password.
func CreateTestUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// CreateTestRecipe inserts a recipe with one ingredient owned by creator.
func CreateTestRecipe(t *testing.T, db *gorm.DB, creator *models.User, title string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		Title:        title,
		Description:  "a test recipe",
		Instructions: "mix everything and serve",
		Category:     models.CategoryDinner,
		CreatedByID:  creator.ID,
		Ingredients: []models.Ingredient{
			{Name: "rice", Quantity: "2 cups"},
		},
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return &recipe
}
