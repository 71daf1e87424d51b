// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-users-api service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and, finally, built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds token and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener, timeout and auth challenge settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the blocking worker pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// DatabaseURL is accepted as an alias of Storage.DB.DSN.
	// Env: DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to verify (and mint) bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" validate:"required"`

	// TokenIssuer is the expected "iss" claim of every bearer token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" validate:"required"`

	// TokenDuration is the lifetime of tokens minted by cmd/token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" validate:"gt=0"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// ReadTimeout bounds reading a whole request, body included.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" validate:"gt=0"`

	// WriteTimeout bounds writing a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" validate:"gt=0"`

	// AuthRealm is the realm advertised in the WWW-Authenticate challenge.
	// Env: SERVER_AUTH_REALM
	AuthRealm string `env:"AUTH_REALM" validate:"required"`

	// ExposeNotFound makes GET /users/{id} answer 404 for a missing row
	// instead of the generic 500.
	// Env: SERVER_EXPOSE_NOT_FOUND
	ExposeNotFound bool `env:"EXPOSE_NOT_FOUND"`
}

// DB holds connection pool settings for the relational database backend.
type DB struct {
	// DSN is the connection descriptor. "postgres://" and "postgresql://"
	// DSNs use the pgx driver, anything else is opened with SQLite
	// (e.g. "file:users.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required"`

	// MaxOpenConns is the pool capacity: leases never exceed it.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" validate:"gt=0"`

	// MaxIdleConns is the number of idle connections kept for reuse.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS" validate:"gte=0"`

	// ConnMaxLifetime recycles connections older than this.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" validate:"gte=0"`

	// AcquireTimeout bounds how long a unit of work waits for a lease
	// before failing with a pool exhaustion error.
	// Env: STORAGE_DB_ACQUIRE_TIMEOUT
	AcquireTimeout time.Duration `env:"ACQUIRE_TIMEOUT" validate:"gt=0"`

	// SkipMigrations disables schema migrations at startup.
	// Env: STORAGE_DB_SKIP_MIGRATIONS
	SkipMigrations bool `env:"SKIP_MIGRATIONS"`
}

// Workers holds configuration for the blocking worker pool.
type Workers struct {
	// BlockingPoolSize is the number of goroutines executing store work.
	// Env: WORKERS_BLOCKING_POOL_SIZE
	BlockingPoolSize int `env:"BLOCKING_POOL_SIZE" validate:"gt=0"`

	// QueueSize is the number of submitted units that may wait for a free
	// worker before submitters start to wait themselves.
	// Env: WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE" validate:"gte=0"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetAppConfig loads the token settings only (env and JSON sources). It is
// used by tools that mint tokens and have no use for the storage settings.
func GetAppConfig() (*App, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, err
	}

	if err := validateStruct(cfg.App); err != nil {
		return nil, err
	}

	return &cfg.App, nil
}
