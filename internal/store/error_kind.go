package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
)

// Kind is the internal classification of a store failure. The HTTP layer
// may collapse every kind into the same response; the kind is still logged
// and drives the optional not-found mapping.
type Kind int

const (
	// KindOK classifies a nil error.
	KindOK Kind = iota

	// KindInternal is any failure not covered by a more specific kind.
	KindInternal

	// KindNotFound means the addressed row does not exist.
	KindNotFound

	// KindConflict means a constraint (e.g. uniqueness) rejected the write.
	KindConflict

	// KindUnavailable covers transient conditions: pool exhaustion, lost
	// connections, serialization failures, a busy or locked database.
	KindUnavailable
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// ErrorClassificator maps a driver-specific error to a [Kind]. Classify
// returns [KindInternal] for errors it does not recognise.
type ErrorClassificator interface {
	Classify(err error) Kind
}

var driverClassificators = []ErrorClassificator{
	NewPostgresErrorClassifier(),
	NewSQLiteErrorClassifier(),
}

// Classify returns the [Kind] of err. Sentinel errors of this package are
// checked first, then every driver classifier in turn.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrUserNotFound), errors.Is(err, sql.ErrNoRows):
		return KindNotFound
	case errors.Is(err, ErrPoolExhausted),
		errors.Is(err, ErrAcquiringConnection),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		return KindUnavailable
	}

	for _, c := range driverClassificators {
		if kind := c.Classify(err); kind != KindInternal {
			return kind
		}
	}

	return KindInternal
}
