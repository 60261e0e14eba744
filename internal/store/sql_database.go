package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/migrations"
	"github.com/Masterminds/squirrel"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It names the constraint a failed statement
// ran into so repositories can map it to a domain error.
type ErrorClassification int

const (
	// Unclassified covers every error that is not a known constraint violation.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a FOREIGN KEY constraint failure.
	ForeignKeyViolation
)

// ErrorClassificator inspects driver errors of one database dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database/sql connection bound to one SQL dialect.
// Repositories build their statements through [DB.builder] so the same code
// runs against PostgreSQL and SQLite.
type DB struct {
	*sql.DB
	driver             string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	timeArg            func(time.Time) any
	logger             *logger.Logger
}

// NewConnection opens and pings the database described by cfg.
func NewConnection(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver, db.logger)
}

func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// now returns the current time at the precision both dialects store.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
