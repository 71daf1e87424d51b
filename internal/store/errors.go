// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by primary key matches no row.
	ErrUserNotFound = errors.New("no user was found")

	// ErrPoolExhausted is returned when no connection could be leased from the
	// pool within the configured acquire timeout.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrAcquiringConnection is returned when leasing a connection fails for
	// any other reason (e.g. the database is unreachable).
	ErrAcquiringConnection = errors.New("failed to acquire database connection")

	// ErrUnsupportedDialect is returned when migrations are requested for a
	// driver this package does not know about.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails or its affected row count cannot be read.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan user rows")
)
