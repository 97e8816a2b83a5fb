package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/dkolev/gymtrack/internal/adapters/handler/http/middleware"
	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler      *AuthHandler
	CatalogHandler   *CatalogHandler
	ScheduleHandler  *ScheduleHandler
	WorkoutHandler   *WorkoutHandler
	StatsHandler     *StatsHandler
	NutritionHandler *NutritionHandler
	ProfileHandler   *ProfileHandler
	BackupHandler    *BackupHandler
	TokenService     *services.TokenService
	Store            domain.KVStore
	Redis            *redis.Client
	StartTime        time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		storeStatus := "connected"
		_, err := deps.Store.Get(c.Request.Context(), "health_probe")
		if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
			storeStatus = "unreachable"
		}

		statusCode := 200
		if storeStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"store":  storeStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(apiV1)
	}

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.CatalogHandler.RegisterRoutes(protected)
		deps.ScheduleHandler.RegisterRoutes(protected)
		deps.WorkoutHandler.RegisterRoutes(protected)
		deps.StatsHandler.RegisterRoutes(protected)
		deps.NutritionHandler.RegisterRoutes(protected)
		deps.ProfileHandler.RegisterRoutes(protected)
		deps.BackupHandler.RegisterRoutes(protected)
	}

	return router
}
