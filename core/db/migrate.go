package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies embedded SQL migrations in filename order. Each migration
// runs in its own transaction and is recorded in schema_migrations, so
// reapplying is a no-op.
func Migrate(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := isApplied(ctx, database, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		contents, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := apply(ctx, database, name, string(contents)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		slog.InfoContext(ctx, "migration applied", "migration", name)
	}

	return nil
}

func isApplied(ctx context.Context, database *sql.DB, name string) (bool, error) {
	var exists bool
	err := database.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE filename = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking migration %s: %w", name, err)
	}
	return exists, nil
}

func apply(ctx context.Context, database *sql.DB, name, contents string) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, contents); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (filename) VALUES ($1)`, name,
	); err != nil {
		return err
	}
	return tx.Commit()
}
