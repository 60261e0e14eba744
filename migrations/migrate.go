// Package migrations embeds the database schema and applies it with goose.
// Each supported database/sql driver has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dirs maps a database/sql driver name to its migrations directory.
var dirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate applies all pending migrations for driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := dirs[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msgf(format, v...)
}

// Fatalf is only reached on programming errors inside goose; the failing
// migration is still returned to the caller as an error.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msgf(format, v...)
}
