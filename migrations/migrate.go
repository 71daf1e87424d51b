// Package migrations embeds the SQL schema for every supported dialect and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// dialectDirs maps a database/sql driver name to its goose dialect and the
// embedded directory holding its migrations.
var dialectDirs = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite3"},
}

// Migrate applies all pending migrations for driverName ("pgx" or
// "sqlite3") to db.
func Migrate(db *sql.DB, driverName string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := dialectDirs[driverName]
	if !ok {
		return fmt.Errorf("migration error: unknown driver %q", driverName)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(string(target.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "goose").Msgf(format, v...)
}

// Fatalf is logged at error level; goose's own callers return the error
// afterwards, so the process is not terminated here.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "goose").Msgf(format, v...)
}
