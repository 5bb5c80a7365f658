// Package server wires the application together and owns the HTTP
// listener's lifecycle.
package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/feastbook/backend/config"
	"github.com/feastbook/backend/internal/api"
	"github.com/feastbook/backend/internal/cache"
	"github.com/feastbook/backend/internal/database"
	"github.com/feastbook/backend/internal/router"
	"github.com/feastbook/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
}

// New builds a fully wired server: store, migrations, optional cache,
// services, handlers and routes.
func New(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}

	// Redis is optional infrastructure; the server runs without it.
	var redisClient *redis.Client
	var recipeCache cache.Cache
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis (%v), continuing without cache", err)
		} else {
			recipeCache = cache.NewRedisCache(redisClient)
		}
	}

	userService := service.NewUserService(db)
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	recipeService := service.NewRecipeService(db, recipeCache)

	userHandler := api.NewUserHandler(userService, authService)
	recipeHandler := api.NewRecipeHandler(recipeService)

	engine := router.SetupRouter(cfg, db, redisClient, userHandler, recipeHandler)

	return &Server{
		router: engine,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: engine,
		},
		db:    db,
		redis: redisClient,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
