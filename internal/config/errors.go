package config

import "errors"

// Errors returned by the config loaders when the merged configuration cannot
// be used to start the service.
var (
	// ErrMissingDSN indicates that no database connection descriptor was
	// supplied by any source (STORAGE_DB_DATABASE_URI, DATABASE_URL, -d or
	// the JSON file).
	ErrMissingDSN = errors.New("database connection string is not set")

	// ErrInvalidConfig wraps every validation rule violation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
