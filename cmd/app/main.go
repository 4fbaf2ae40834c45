package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/bootstrap"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/calendar"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/config"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/database"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/market"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title KrishiRaksha API
// @version 1.0
// @description Harvest timing, crop calendar and market price service for farmers.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("KrishiRaksha exited with error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	catalog, err := bootstrap.LoadCropCatalog(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	reminders, err := bootstrap.StartReminders(cfg, repos.Calendar, catalog)
	if err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, dbPool, server.Services{
		Harvest:  harvest.NewService(repos.Harvest, catalog, time.Now),
		Calendar: calendar.NewService(repos.Calendar, time.Now),
		Market: market.NewService(repos.Market, catalog, market.Config{
			CacheSize: cfg.MarketCacheSize,
			CacheTTL:  cfg.MarketCacheTTL,
		}, time.Now),
		Crops: catalog,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Reminders: reminders,
		DBPool:    dbPool,
	})

	return err
}
