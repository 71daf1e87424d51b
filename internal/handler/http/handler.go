package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/service"
)

const defaultAuthRealm = "users"

type Handler struct {
	services *service.Services

	// realm is advertised in the WWW-Authenticate challenge.
	realm string

	// exposeNotFound answers 404 instead of 500 for a missing user.
	exposeNotFound bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	realm := cfg.AuthRealm
	if realm == "" {
		realm = defaultAuthRealm
	}

	logger.Info().Str("realm", realm).Bool("expose_not_found", cfg.ExposeNotFound).Msg("http handler created")
	return &Handler{
		services:       services,
		realm:          realm,
		exposeNotFound: cfg.ExposeNotFound,
		logger:         logger,
	}
}

func loggerFrom(r *http.Request) *logger.Logger {
	return logger.FromRequest(r)
}
