// Package storage provides the data access layer for the platform. A single
// Storage wraps a Bun database handle; per-module stores expose typed CRUD
// built on the generic Repository and Spec types, and every tenant-owned
// query is scoped by tenant ID here, never in the handlers.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/conectone/platform/internal/config"
)

// Storage is the platform data access layer.
type Storage struct {
	db  *bun.DB
	cfg *config.Config
}

// New opens a database connection for the configured driver and returns the
// storage layer. Supported drivers: sqlite, postgres, mysql.
func New(cfg *config.Config) (*Storage, error) {
	db, err := open(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
		))
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	for _, model := range RegisteredModels() {
		db.RegisterModel(model)
	}

	return &Storage{db: db, cfg: cfg}, nil
}

func open(dc config.DatabaseConfig) (*bun.DB, error) {
	switch dc.Driver {
	case "sqlite", "":
		sqldb, err := sql.Open(sqliteshim.ShimName, dc.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil

	case "postgres":
		sqldb, err := sql.Open("postgres", dc.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil

	case "mysql":
		sqldb, err := sql.Open("mysql", dc.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open mysql database: %w", err)
		}
		return bun.NewDB(sqldb, mysqldialect.New()), nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", dc.Driver)
	}
}

// DB exposes the underlying Bun handle for advanced queries.
func (s *Storage) DB() *bun.DB { return s.db }

// Migrate creates tables for every registered model if they do not exist.
func (s *Storage) Migrate(ctx context.Context) error {
	for _, model := range RegisteredModels() {
		if _, err := s.db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	return nil
}

// Ping verifies the database connection.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// RunInTx executes fn inside a transaction.
func (s *Storage) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	return s.db.RunInTx(ctx, nil, fn)
}
