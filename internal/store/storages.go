package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// Storages aggregates every repository of the application together with the
// connection they share.
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	db, err := NewConnection(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s database: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStorages(db, hasher, log), nil
}

func newStorages(db *DB, hasher crypto.PasswordHasher, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, hasher, log),
		BlogRepository: NewBlogRepository(db, log),
		db:             db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
