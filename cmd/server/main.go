package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/news-portal-api/internal/api"
	"github.com/news-portal-api/internal/config"
	"github.com/news-portal-api/internal/database"
	"github.com/news-portal-api/internal/repository"
	"github.com/news-portal-api/internal/repository/postgres"
	"github.com/news-portal-api/internal/seed"
	"github.com/news-portal-api/internal/service"
	"github.com/news-portal-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting news portal API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	weights := repository.PopularityWeights{
		View:    cfg.Popularity.ViewWeight,
		Comment: cfg.Popularity.CommentWeight,
		Share:   cfg.Popularity.ShareWeight,
	}

	// Initialize the storage backend
	var repos *repository.Repositories
	var healthCheck func(context.Context) error
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.New(&cfg.Storage.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()

		migrationsPath := os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		repos = postgres.New(db, weights)
		healthCheck = db.HealthCheck
	default:
		repos = repository.NewMemory(weights)
	}
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Storage backend initialized")

	// Seed the content store before exposing any endpoint
	if !cfg.Seed.Skip {
		dataset := seed.DefaultDataset()
		if cfg.Seed.File != "" {
			dataset, err = seed.LoadFile(cfg.Seed.File)
			if err != nil {
				log.Fatal().Err(err).Str("file", cfg.Seed.File).Msg("Failed to load seed file")
			}
		}
		loader := seed.NewLoader(repos, log)
		if _, err := loader.Run(context.Background(), dataset); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed content store")
		}
	}

	// Initialize services
	services := service.NewServices(repos, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log, healthCheck)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
