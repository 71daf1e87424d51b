package service

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/workers"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages *store.Storages, pool *workers.Pool, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg, logger),
		UserService: NewUserService(storages.UserRepository, pool, logger),
	}
}
