package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	adapterHTTP "github.com/dkolev/gymtrack/internal/adapters/handler/http"
	"github.com/dkolev/gymtrack/internal/adapters/kvstore"
	"github.com/dkolev/gymtrack/internal/config"
	"github.com/dkolev/gymtrack/internal/core/domain"
	"github.com/dkolev/gymtrack/internal/core/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on environment")
	}

	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var store domain.KVStore
	var redisClient *redis.Client

	switch cfg.Store.Backend {
	case "postgres":
		db, err := sqlx.Connect("pgx", cfg.Postgres.DSN)
		if err != nil {
			logrus.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		pg := kvstore.NewPostgres(db)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			logrus.Fatalf("failed to ensure postgres schema: %v", err)
		}
		store = pg
		logrus.Info("using postgres store")

	case "redis":
		client, err := kvstore.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.Fatalf("failed to connect to redis: %v", err)
		}
		defer client.Close()

		redisClient = client
		store = kvstore.NewRedis(client)
		logrus.Info("using redis store")

	default:
		store = kvstore.NewMemory()
		logrus.Info("using in-memory store")
	}

	catalogService := services.NewCatalogService(store)
	catalogService.Seed(context.Background())

	scheduleService := services.NewScheduleService(store, catalogService)
	sessionService := services.NewSessionService(store, catalogService)
	statsService := services.NewStatsService(store)
	nutritionService := services.NewNutritionService(store)
	profileService := services.NewProfileService(store, nutritionService)
	backupService := services.NewBackupService(store)

	var tokenService *services.TokenService
	var authHandler *adapterHTTP.AuthHandler
	if cfg.Auth.PinHash != "" {
		tokenService = services.NewTokenService(cfg.Auth.PinHash, cfg.Auth.Secret, "gymtrack", cfg.Auth.TokenTTL)
		authHandler = adapterHTTP.NewAuthHandler(tokenService)
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      authHandler,
		CatalogHandler:   adapterHTTP.NewCatalogHandler(catalogService),
		ScheduleHandler:  adapterHTTP.NewScheduleHandler(scheduleService),
		WorkoutHandler:   adapterHTTP.NewWorkoutHandler(sessionService),
		StatsHandler:     adapterHTTP.NewStatsHandler(statsService),
		NutritionHandler: adapterHTTP.NewNutritionHandler(nutritionService),
		ProfileHandler:   adapterHTTP.NewProfileHandler(profileService),
		BackupHandler:    adapterHTTP.NewBackupHandler(backupService),
		TokenService:     tokenService,
		Store:            store,
		Redis:            redisClient,
		StartTime:        startTime,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.Infof("gymtrack engine listening on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("stop signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("forced shutdown error: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
