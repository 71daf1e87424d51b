package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

// authService is the concrete implementation of AuthService.
// It validates and issues HS256 JWT bearer tokens. It holds no per-request
// state and is safe for concurrent use.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Validate reports whether tokenString is a JWT signed with the configured
// key, issued by the configured issuer and not expired.
//
// An invalid token is not an error: it yields (false, nil). The underlying
// reason is logged at debug level and never returned to the caller.
func (a *authService) Validate(ctx context.Context, tokenString string) (bool, error) {
	if _, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.Validate").Msg("token rejected")
		return false, nil
	}

	return true, nil
}

// CreateToken issues a signed JWT for subject.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, subject, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Str("subject", subject).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
