// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the database/sql implementation of [UserRepository]
// over the "users" table. Every method leases one connection from [DB]
// and releases it before returning.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	queries userQueries
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// pool and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		queries: newUserQueries(db.Dialect()),
	}
}

// ListUsers implements [UserRepository].
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.listUsers()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withLease(ctx, r.db, func(conn *Lease) ([]models.User, error) {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
			return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users := make([]models.User, 0)
		for rows.Next() {
			var user models.User
			if err = rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.CreatedAt); err != nil {
				log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning row")
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, user)
		}

		if err = rows.Err(); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		return users, nil
	})
}

// GetUser implements [UserRepository]. A missing row (sql.ErrNoRows or
// PostgreSQL no_data_found) is reported as [ErrUserNotFound].
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx).With().Int64("user_id", id).Logger()

	query, args, err := r.queries.getUser(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withLease(ctx, r.db, func(conn *Lease) (models.User, error) {
		var user models.User
		err := conn.QueryRowContext(ctx, query, args...).
			Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.CreatedAt)

		switch {
		case err == nil:
			return user, nil
		case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
			log.Debug().Str("func", "*userRepository.GetUser").Msg("user not found")
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*userRepository.GetUser").Msg("error fetching user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	})
}

// CreateUser implements [UserRepository].
func (r *userRepository) CreateUser(ctx context.Context, user models.NewUser, createdAt time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.createUser(user, createdAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withLease(ctx, r.db, func(conn *Lease) (int64, error) {
		return r.exec(ctx, conn, "*userRepository.CreateUser", query, args)
	})
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteUser(id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return withLease(ctx, r.db, func(conn *Lease) (int64, error) {
		return r.exec(ctx, conn, "*userRepository.DeleteUser", query, args)
	})
}

// exec runs a DML statement on conn and returns its affected row count.
func (r *userRepository) exec(ctx context.Context, conn *Lease, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("kind", Classify(err).String()).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
