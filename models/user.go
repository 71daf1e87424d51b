package models

import "time"

// User is a single row of the "users" table as returned to API callers.
// ID and CreatedAt are assigned by the server at insert time and never change.
type User struct {
	// ID is the store-assigned primary key.
	ID int64 `json:"id"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	// CreatedAt is stamped from the server's local clock right before the
	// row is inserted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser is the unvalidated payload accepted by the create operation.
// It carries no identifier or timestamp, both are assigned by the store.
type NewUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
