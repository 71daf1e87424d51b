package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite errors
// returned by the go-sqlite3 driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A busy or locked database is
// [KindUnavailable], a unique or primary key violation is [KindConflict];
// everything else, including non-SQLite errors, is [KindInternal].
func (c *SQLiteErrorClassifier) Classify(err error) Kind {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return KindInternal
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return KindUnavailable
	case sqlite3.ErrConstraint:
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return KindConflict
		}
	}

	return KindInternal
}
