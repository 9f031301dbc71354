package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/adapter/http/router"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/cache"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/config"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/logger"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/infrastructure/registry"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load model artifacts. A failed load never aborts startup: the service
	// runs degraded and reports the state through /health.
	modelRegistry := registry.Load(&cfg.Model, log)
	if modelRegistry.Ready() {
		log.Info("Model and vectorizer loaded successfully")
	} else {
		log.Warn("Service starting without a usable model; /predict will fail until restart",
			zap.Bool("vectorizer_loaded", modelRegistry.VectorizerLoaded()),
			zap.Bool("classifier_loaded", modelRegistry.ClassifierLoaded()))
	}

	// Initialize Redis (optional, continue without it)
	var predictionCache usecase.Cache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		log.Info("Connected to Redis")
		predictionCache = cache.NewPredictionCache(redisClient, cfg.Redis.TTL)
	}

	// Initialize usecase and router
	predictUC := usecase.NewPredictUsecase(modelRegistry, predictionCache, log)
	r := router.Setup(predictUC, modelRegistry, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}
