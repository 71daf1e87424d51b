// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/workers"
	"github.com/MKhiriev/go-users-api/models"
)

// userService runs each [store.UserRepository] call as a single unit of
// work on the blocking pool, so the calling goroutine only waits on the
// result. Errors are passed through unchanged; classification happens at
// the transport edge with [store.Classify].
type userService struct {
	userRepository store.UserRepository
	pool           *workers.Pool
	now            func() time.Time
	logger         *logger.Logger
}

// NewUserService constructs a UserService that executes repository calls
// on pool.
func NewUserService(userRepository store.UserRepository, pool *workers.Pool, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		pool:           pool,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := workers.Do(ctx, s.pool, func(workCtx context.Context) ([]models.User, error) {
		return s.userRepository.ListUsers(workCtx)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := workers.Do(ctx, s.pool, func(workCtx context.Context) (models.User, error) {
		return s.userRepository.GetUser(workCtx, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Int64("user_id", id).Msg("error getting user")
		return models.User{}, err
	}

	return user, nil
}

// CreateUser stamps the record with the service clock right before the
// insert runs, inside the unit of work.
func (s *userService) CreateUser(ctx context.Context, user models.NewUser) (int64, error) {
	affected, err := workers.Do(ctx, s.pool, func(workCtx context.Context) (int64, error) {
		return s.userRepository.CreateUser(workCtx, user, s.now())
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return 0, err
	}

	return affected, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	affected, err := workers.Do(ctx, s.pool, func(workCtx context.Context) (int64, error) {
		return s.userRepository.DeleteUser(workCtx, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		return 0, err
	}

	return affected, nil
}
