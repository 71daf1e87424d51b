package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// TokenValidator decides whether a bearer credential grants access.
// A false result and a non-nil error are both treated as a rejection.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (bool, error)
}

type AuthService interface {
	TokenValidator

	// CreateToken issues a signed bearer token for subject.
	CreateToken(ctx context.Context, subject string) (models.Token, error)
}

// UserService exposes the user resource operations. Every method runs its
// store work as one unit on the blocking worker pool.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}
