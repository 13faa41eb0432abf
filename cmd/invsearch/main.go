package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/harborline/invsearch/internal/config"
	"github.com/harborline/invsearch/internal/db"
	dbRedis "github.com/harborline/invsearch/internal/db/redis"
	logpkg "github.com/harborline/invsearch/internal/logger"
	"github.com/harborline/invsearch/internal/repository/catalog"
	"github.com/harborline/invsearch/internal/repository/static"
	chiTransport "github.com/harborline/invsearch/internal/transport/chi"
	healthuc "github.com/harborline/invsearch/internal/usecase/health"
	searchuc "github.com/harborline/invsearch/internal/usecase/search"
	suggestuc "github.com/harborline/invsearch/internal/usecase/suggest"
	"github.com/harborline/invsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting invsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	ctx := context.Background()

	// Primary source: Redis catalog when configured, otherwise memory-only.
	var primary searchuc.Source
	var pinger healthuc.StorePinger

	if cfg.Database.Driver == "redis" {
		store, err := connectStore(ctx, cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to catalog store", zap.Error(err))
		}
		defer store.Close()

		repo := catalog.New(store, cfg.Storage.KeyPrefix)
		if cfg.Database.SeedDemoData {
			if err := seedIfEmpty(ctx, repo, logger); err != nil {
				logger.Fatal("Failed to seed demo data", zap.Error(err))
			}
		}

		primary = repo
		pinger = store
	} else {
		logger.Info("Running with the in-memory dataset only")
	}

	// Create use case services
	searchSvc := searchuc.New(primary, static.New(), logger)
	suggestSvc := suggestuc.New()
	healthSvc := healthuc.New(pinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, suggestSvc, healthSvc, chiTransport.PageLimits{
		Default: cfg.Search.DefaultPageSize,
		Max:     cfg.Search.MaxPageSize,
	}, logger)
	router := chiTransport.NewRouter(server, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

func connectStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("store not ready: %w", err)
	}

	logger.Info("Connected to catalog store")
	return store, nil
}

func seedIfEmpty(ctx context.Context, repo *catalog.Repo, logger *zap.Logger) error {
	empty, err := repo.Empty(ctx)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if !empty {
		return nil
	}

	assets, users, investments := static.Dataset()
	if err := repo.Seed(ctx, assets, users, investments); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	logger.Info("Seeded demo dataset",
		zap.Int("assets", len(assets)),
		zap.Int("users", len(users)),
		zap.Int("investments", len(investments)),
	)
	return nil
}
