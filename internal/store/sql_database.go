// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/migrations"
)

// Dialect is the database/sql driver name a [DB] was opened with. It also
// selects the SQL placeholder format and the migration directory.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DialectFromDSN picks the driver for dsn: PostgreSQL URLs go to pgx,
// everything else is treated as a SQLite file or URI.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

// DB is the process-wide connection pool. Units of work borrow connections
// from it through [DB.Lease] or [DB.WithLease].
type DB struct {
	*sql.DB
	dialect        Dialect
	acquireTimeout time.Duration
	logger         *logger.Logger
}

// NewDB opens the pool described by cfg, applies its limits and pings the
// database once.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect := DialectFromDSN(cfg.DSN)

	var (
		conn *sql.DB
		err  error
	)
	switch dialect {
	case DialectPostgres:
		conn, err = openPostgres(cfg.DSN)
	default:
		conn, err = openSQLite(cfg.DSN, log)
	}
	if err != nil {
		log.Err(err).Str("func", "store.NewDB").Str("dialect", string(dialect)).Msg("error opening database")
		return nil, err
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.NewDB").Str("dialect", string(dialect)).Msg("error connecting to database")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Info().
		Str("func", "store.NewDB").
		Str("dialect", string(dialect)).
		Int("max_open_conns", cfg.MaxOpenConns).
		Dur("acquire_timeout", cfg.AcquireTimeout).
		Msg("database pool is ready")

	return newDB(conn, dialect, cfg.AcquireTimeout, log), nil
}

func newDB(conn *sql.DB, dialect Dialect, acquireTimeout time.Duration, log *logger.Logger) *DB {
	return &DB{
		DB:             conn,
		dialect:        dialect,
		acquireTimeout: acquireTimeout,
		logger:         log,
	}
}

// Dialect reports the driver the pool was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate brings the schema up to date for the pool's dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDialect, db.dialect)
	}

	if err := migrations.Migrate(db.DB, string(db.dialect), db.logger); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error running migrations")
		return err
	}

	return nil
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	db.logger.Info().Str("func", "*DB.Close").Msg("closing database pool")
	return db.DB.Close()
}
