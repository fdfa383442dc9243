package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and metadata changes against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the canonical row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Email, user.PasswordHash, user.Metadata.DisplayName, user.Metadata.AvatarURL)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches case-insensitively.
// Returns [ErrUserNotFound] if there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the account by id.
// Returns [ErrUserNotFound] if there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateUserMetadata applies the non-nil fields of update and returns the
// updated account. An empty update returns the stored account unchanged.
func (r *userRepository) UpdateUserMetadata(ctx context.Context, userID string, update models.UserMetadataUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.DisplayName == nil && update.AvatarURL == nil {
		return r.FindUserByID(ctx, userID)
	}

	query, args, err := buildUpdateUserMetadataQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserMetadata").Msg("failed to build query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateUserMetadata").Str("user_id", userID).Msg("error updating user metadata")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// UpdatePassword replaces the password hash of the account.
func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, passwordHash, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Str("user_id", userID).Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrUserNotFound)
}

// requireAffected maps a zero-row DML result to notFound.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
