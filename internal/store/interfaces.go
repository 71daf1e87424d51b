package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user records. Every method
// leases exactly one pooled connection for its duration and blocks on it, so
// callers run these methods inside a worker pool unit of work.
type UserRepository interface {
	// ListUsers returns every row in store order. An empty table yields an
	// empty, non-nil slice.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the row with the given id or [ErrUserNotFound].
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser inserts user stamped with createdAt and returns the number
	// of rows affected.
	CreateUser(ctx context.Context, user models.NewUser, createdAt time.Time) (int64, error)

	// DeleteUser removes the row with the given id and returns the number of
	// rows affected; deleting an absent id affects 0 rows and is not an error.
	DeleteUser(ctx context.Context, id int64) (int64, error)
}
