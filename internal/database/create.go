package database

import (
	"context"
	"database/sql"
	"fmt"

	"wayfarer/internal/config"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// EnsureDatabase creates the configured Postgres database when it does not
// exist yet. It connects to the maintenance database "postgres" to do so and
// reports whether a database was created.
func EnsureDatabase(ctx context.Context, cfg *config.Config) (bool, error) {
	db, err := sql.Open("pgx", PostgresDSN(cfg, "postgres"))
	if err != nil {
		return false, fmt.Errorf("open maintenance database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return ensureDatabase(ctx, db, cfg.DBName)
}

func ensureDatabase(ctx context.Context, db *sql.DB, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("database name is empty")
	}

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database %q: %w", name, err)
	}
	if exists {
		return false, nil
	}

	if _, err := db.ExecContext(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return false, fmt.Errorf("create database %q: %w", name, err)
	}
	return true, nil
}
