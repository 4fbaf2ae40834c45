package main

import (
	"context"
	"fmt"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/config"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/database"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
	pingTimeout       = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := loadDBConfig()
	if err != nil {
		return err
	}

	for i := 0; i < waitMaxRetries; i++ {
		err = pingOnce(cfg)
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}

func pingOnce(cfg *config.Config) error {
	pool, err := database.NewPool(cfg.GetDBConnString(), 1, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return pool.Ping(ctx)
}

// loadDBConfig reads the service configuration; only the DB_* settings are used
func loadDBConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
