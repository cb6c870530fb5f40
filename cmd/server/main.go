package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hridaya423/bookify/internal/ai"
	"github.com/hridaya423/bookify/internal/cache"
	"github.com/hridaya423/bookify/internal/core"
	"github.com/hridaya423/bookify/internal/metadata"
	httpProtocol "github.com/hridaya423/bookify/internal/protocols/http"
	"github.com/hridaya423/bookify/internal/repository"
	"github.com/hridaya423/bookify/pkg/config"
	"github.com/hridaya423/bookify/pkg/database"
	"github.com/hridaya423/bookify/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("BOOKIFY_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	logger.Init(loggerCfg)

	logger.Info("Starting Bookify server...")

	// Connect to database
	dbCfg := database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		Timeout:         cfg.Database.Timeout,
	}

	pool, err := database.NewPGXPool(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	logger.Info("Connected to PostgreSQL database")

	// Connect to the stats cache; no-op when Redis is not configured
	jsonCache, err := cache.NewJSONCache(cfg.Redis.URL, cfg.Redis.Prefix)
	if err != nil {
		log.Fatalf("Failed to configure cache: %v", err)
	}
	if err := jsonCache.Ping(context.Background()); err != nil {
		logger.Warnf("Redis unreachable, continuing without cache: %v", err)
		jsonCache = cache.NoopJSONCache{}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool)
	bookRepo := repository.NewBookRepository(pool)
	readingRepo := repository.NewDailyReadingRepository(pool)
	settingsRepo := repository.NewUserSettingsRepository(pool)

	logger.Info("Initialized all repositories")

	// External collaborators
	searcher := metadata.NewGoogleBooksClient(
		cfg.GoogleBooks.BaseURL,
		cfg.GoogleBooks.MaxResults,
		cfg.GoogleBooks.RatePerSec,
	)
	aiClient := ai.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		int(cfg.OpenAI.MaxTokens),
		cfg.OpenAI.Temp,
		cfg.OpenAI.Enabled,
	)
	if aiClient.IsEnabled() {
		logger.Info("AI collaborator enabled")
	} else {
		logger.Info("AI collaborator disabled, using pattern heuristics only")
	}

	// Initialize core services
	authSvc := core.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	bookSvc := core.NewBookService(bookRepo, readingRepo, aiClient)
	statsSvc := core.NewStatsService(bookRepo, readingRepo, settingsRepo, jsonCache, cfg.Redis.StatsTTL)
	seriesSvc := core.NewSeriesService(bookRepo, searcher)
	settingsSvc := core.NewSettingsService(settingsRepo)
	recommendSvc := core.NewRecommendationService(bookRepo, settingsRepo, aiClient)

	logger.Info("Initialized all core services")

	httpServer := httpProtocol.NewServer(
		cfg,
		authSvc,
		bookSvc,
		statsSvc,
		seriesSvc,
		settingsSvc,
		recommendSvc,
	)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf("HTTP server panic recovered: %v", r)
			}
		}()
		httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info(fmt.Sprintf("Starting HTTP server on %s", httpAddr))
		if err := httpServer.Start(httpAddr); err != nil {
			logger.Errorf("HTTP server error: %v", err)
		}
	}()

	logger.Info("Press Ctrl+C to shutdown")

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info(fmt.Sprintf("Received signal: %v", sig))

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	<-shutdownCtx.Done()

	logger.Info("Shutdown complete")
}
