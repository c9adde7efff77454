package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "interview-admin-backend/docs"
	"interview-admin-backend/internal/common/config"
	"interview-admin-backend/internal/common/logger"
	"interview-admin-backend/internal/common/middleware"
	"interview-admin-backend/internal/common/notify"
	candidateHTTP "interview-admin-backend/internal/features/candidate/delivery/http"
	candidateRepo "interview-admin-backend/internal/features/candidate/repository"
	candidateService "interview-admin-backend/internal/features/candidate/service"
	userHTTP "interview-admin-backend/internal/features/user/delivery/http"
	userRepo "interview-admin-backend/internal/features/user/repository"
	userService "interview-admin-backend/internal/features/user/service"
	platformPostgres "interview-admin-backend/internal/platform/postgres"
	platformRedis "interview-admin-backend/internal/platform/redis"
	"interview-admin-backend/internal/storage"
	postgresStore "interview-admin-backend/internal/storage/postgres"
	redisStore "interview-admin-backend/internal/storage/redis"
)

const serviceName = "interview-admin-backend"

// @title           Interview Admin API
// @version         1.0
// @description     Administrative backend for the interview platform: aggregated user listings, moderation actions, CSV exports and candidate reviews.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name admin
// @tag.description User administration - aggregated listings, ban management, cascading delete, export

// @tag.name candidates
// @tag.description Candidate listings with computed average ratings

func main() {
	cfg := config.Load()
	logger.Init(serviceName, cfg.Debug)

	ctx := context.Background()

	var (
		store    storage.Store
		notifier notify.Notifier
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		rdb, err := platformRedis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		store = redisStore.New(rdb.Client)
		notifier = notify.NewStream(rdb.Client, cfg.Notify.Stream)
		logger.Info().Str("driver", cfg.Storage.Driver).Msg("Document store ready")

	case config.StorageDriverPostgres:
		db, err := platformPostgres.Open(ctx, cfg.Postgres.URL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Postgres")
		}
		defer db.Close()

		store, err = postgresStore.New(ctx, db, cfg.Postgres.AutoMigrate)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to prepare document store")
		}
		// Action notifications ride a Redis stream; without Redis they
		// are dropped.
		notifier = notify.Nop{}
		logger.Info().Str("driver", cfg.Storage.Driver).Msg("Document store ready")

	default:
		logger.Fatal().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver")
	}

	userRepository := userRepo.NewStoreRepository(store)
	candidateRepository := candidateRepo.NewStoreRepository(store)

	userSvc := userService.NewUserService(userRepository, notifier)
	candidateSvc := candidateService.NewCandidateService(candidateRepository)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	userHTTP.NewUserHandler(userSvc).RegisterRoutes(v1)
	candidateHTTP.NewCandidateHandler(candidateSvc).RegisterRoutes(v1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerProbes(router, store)

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func registerProbes(router *gin.Engine, store storage.Store) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "storage unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})
}
