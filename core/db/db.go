package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"adlot.app/inventory/core/config"
)

// Open connects to postgres through the pgx stdlib driver and tunes the
// connection pool. Store tests swap in a sqlmock *sql.DB instead.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	database, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(15 * time.Minute)
	database.SetConnMaxIdleTime(5 * time.Minute)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return database, nil
}
