package main

import (
	"context"   // context package is needed for Redis operations
	"errors"    // Server shutdown detection
	"net/http"  // HTTP server
	"os"        // Signal handling
	"os/signal" // Signal handling
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"uni3_backend/internal/api"     // HTTP handlers and router
	"uni3_backend/internal/config"  // Custom package for configuration
	"uni3_backend/internal/db"      // Database connection, migration and seed
	"uni3_backend/internal/geocode" // Reverse geocoding
	"uni3_backend/internal/repository"
	"uni3_backend/internal/service"
	"uni3_backend/internal/storage" // Upload directory

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	logrus.Info(cfg.String())

	database, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Tables and demo data are ensured on every start
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(database); err != nil {
		logrus.Fatalf("seed failed: %v", err)
	}

	redisClient := connectRedis(cfg) // nil when caching is disabled

	files, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("failed to prepare uploads: %v", err)
	}

	geo := geocode.NewCached(
		geocode.NewClient(cfg.GeocodeURL, cfg.GeocodeUserAgent, cfg.GeocodeTimeout),
		redisClient,
		cfg.GeocodeCacheTTL,
	)

	svc := service.New(repository.New(database), geo, files, service.Options{
		TokenMode:               cfg.TokenMode,
		JWTSecret:               cfg.JWTSecret,
		TokenTTL:                cfg.TokenTTL,
		DeliveryGeocodeFallback: cfg.DeliveryGeocodeFallback,
		Redis:                   redisClient,
	})

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewRouter(svc, api.RouterConfig{UploadDir: cfg.UploadDir, UploadURLPrefix: cfg.UploadURLPrefix})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}

// setupLogger applies LOG_LEVEL and LOG_FORMAT to the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// connectRedis returns nil when REDIS_ADDR is unset or the server does not answer
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, caching disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// Test Redis connection
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("failed to connect to Redis, caching disabled: %v", err)
		_ = client.Close()
		return nil
	}
	return client
}
