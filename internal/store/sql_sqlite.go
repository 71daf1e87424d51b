package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-users-api/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const sharedMemoryDSN = "file::memory:?cache=shared"

// openSQLite opens a SQLite pool. A bare ":memory:" DSN gives every pooled
// connection its own empty database, so it is rewritten to a shared-cache
// in-memory database.
func openSQLite(dsn string, log *logger.Logger) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == ":memory:" {
		log.Warn().Str("func", "store.openSQLite").Msg("using shared-cache in-memory sqlite database")
		dsn = sharedMemoryDSN
	}

	conn, err := sql.Open(string(DialectSQLite), dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite connection: %w", err)
	}

	return conn, nil
}
