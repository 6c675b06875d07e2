package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"comment-service/internal/config"
	"comment-service/internal/handler"
	"comment-service/internal/infrastructure/database"
	"comment-service/internal/logger"
	"comment-service/internal/metrics"
	"comment-service/internal/repository"
	"comment-service/internal/restclient"
	"comment-service/internal/server"
	"comment-service/internal/service"
	"comment-service/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logCloser := logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer logCloser.Close()

	// Apply schema migrations
	if cfg.DBAutoMigrate {
		version, err := database.Migrate(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Database schema ready", slog.Uint64("version", uint64(version)))
	} else {
		logger.Warn("Automatic migrations disabled, expecting the comments schema to exist")
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		URL:               cfg.DatabaseURL,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	commentRepo := repository.NewPostgresCommentRepository(pool)
	articleClient := restclient.NewArticleClient(cfg.ArticleServiceURL, cfg.ArticleServiceTimeout)
	commentService := service.NewCommentService(articleClient, commentRepo, validator.NewValidator())

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.Deps{
		Comments:    handler.NewCommentHandler(commentService),
		Health:      handler.NewHealthHandler(pool),
		CORSOrigins: cfg.CORSAllowedOrigins,
		AccessLog:   true,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("article_service_url", cfg.ArticleServiceURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
