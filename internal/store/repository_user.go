package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	hasher crypto.PasswordHasher
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection. Passwords are hashed with hasher right before they
// are written.
func NewUserRepository(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		hasher: hasher,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with server-assigned
// fields (ID, CreatedAt) and the password replaced by its hash.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - any other driver-level error → [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := r.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.ID = r.ids.Generate()
	user.Password = hash
	user.CreatedAt = now()

	query, args, err := buildInsertUserQuery(r.db.builder(), user, r.db.timeArg(user.CreatedAt))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, squirrel.Eq{"email": email})
}

// FindUserByID implements [UserRepository]. Malformed ids are reported as
// [ErrUserNotFound] without querying the database.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if !utils.IsValidID(id) {
		return models.User{}, ErrUserNotFound
	}
	return r.findUser(ctx, squirrel.Eq{"id": id})
}

func (r *userRepository) findUser(ctx context.Context, where squirrel.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ExistsByEmailOrUsername implements [UserRepository].
func (r *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersByEmailOrUsernameQuery(r.db.builder(), email, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmailOrUsername").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByEmailOrUsername").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
