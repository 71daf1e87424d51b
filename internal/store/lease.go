package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Lease is one connection checked out of the pool. It must be released
// exactly once; Release is idempotent.
type Lease struct {
	*sql.Conn
	once sync.Once
	err  error
}

// Release returns the connection to the pool.
func (l *Lease) Release() error {
	l.once.Do(func() {
		l.err = l.Conn.Close()
	})

	return l.err
}

// Lease checks out one connection. Waiting is bounded by the pool's acquire
// timeout: when it elapses while ctx is still alive the pool is considered
// exhausted and [ErrPoolExhausted] is returned. Any other failure is
// reported as [ErrAcquiringConnection].
func (db *DB) Lease(ctx context.Context) (*Lease, error) {
	log := logger.FromContext(ctx)

	acquireCtx := ctx
	if db.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	conn, err := db.Conn(acquireCtx)
	if err == nil {
		return &Lease{Conn: conn}, nil
	}

	stats := db.Stats()
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		log.Error().Err(err).
			Str("func", "*DB.Lease").
			Int("in_use", stats.InUse).
			Int("max_open_conns", stats.MaxOpenConnections).
			Dur("acquire_timeout", db.acquireTimeout).
			Msg("connection pool exhausted")
		return nil, fmt.Errorf("%w: %w", ErrPoolExhausted, err)
	}

	log.Error().Err(err).Str("func", "*DB.Lease").Int("in_use", stats.InUse).Msg("error acquiring connection")
	return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
}

// WithLease runs fn on a leased connection. The lease is released on every
// exit path of fn, including a panic.
func (db *DB) WithLease(ctx context.Context, fn func(*Lease) error) error {
	_, err := withLease(ctx, db, func(lease *Lease) (struct{}, error) {
		return struct{}{}, fn(lease)
	})

	return err
}

func withLease[T any](ctx context.Context, db *DB, fn func(*Lease) (T, error)) (T, error) {
	lease, err := db.Lease(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	defer func() {
		if releaseErr := lease.Release(); releaseErr != nil {
			logger.FromContext(ctx).Err(releaseErr).Str("func", "store.withLease").Msg("error releasing connection")
		}
	}()

	return fn(lease)
}
