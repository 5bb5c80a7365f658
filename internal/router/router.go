package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/feastbook/backend/config"
	"github.com/feastbook/backend/internal/api"
	"github.com/feastbook/backend/internal/database"
	"github.com/feastbook/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	userHandler *api.UserHandler,
	recipeHandler *api.RecipeHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/health", healthHandler(db, redisClient))

	generalLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	loginLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitLoginRPS), cfg.RateLimitLoginBurst)

	v1 := router.Group("/api/v1")
	v1.Use(generalLimiter.LimitMiddleware())
	{
		userHandler.RegisterRoutes(v1, loginLimiter.LimitMiddleware())
		recipeHandler.RegisterRoutes(v1)
	}

	return router
}

func healthHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": err.Error()})
			return
		}
		status := gin.H{"status": "ok"}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				status["cache"] = "unavailable"
			}
		}
		c.JSON(http.StatusOK, status)
	}
}
