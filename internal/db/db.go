// Package db provides PostgreSQL storage for cloned templates and extracted
// profiles.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsDir = "migrations"

// goose keeps its dialect and filesystem in package state.
var migrateMu sync.Mutex

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
	url  string
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, url: databaseURL}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema applies any pending embedded migrations.
func (db *DB) EnsureSchema(ctx context.Context) error {
	sqlDB, err := sql.Open("pgx", db.url)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := runMigrations(ctx, sqlDB); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func runMigrations(ctx context.Context, sqlDB *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(log.New(io.Discard, "", 0))
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, sqlDB, migrationsDir)
}

// Schema returns the SQL of every embedded migration in version order.
func Schema() string {
	entries, err := migrationFiles.ReadDir(migrationsDir)
	if err != nil {
		return ""
	}
	var out string
	for _, entry := range entries {
		data, err := migrationFiles.ReadFile(migrationsDir + "/" + entry.Name())
		if err != nil {
			continue
		}
		out += string(data)
	}
	return out
}
