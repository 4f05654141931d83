package main

import (
	"context"
	"log/slog"
	"os"

	"adlot.app/inventory/common/logger"
	"adlot.app/inventory/core/config"
	"adlot.app/inventory/core/db"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg)

	database, err := db.Open(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		slog.ErrorContext(ctx, "failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "migrations applied")
}
