package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Storages groups the connection pool with the repositories built on it.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages opens the pool from cfg, runs migrations unless disabled and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if !cfg.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
