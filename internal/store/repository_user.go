package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tilyasov/bookstore/internal/logger"
	"github.com/tilyasov/bookstore/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles the login upsert and profile lookup against the "users" table.
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

// UpsertUser persists the user record for a verified identity.
//
// The INSERT carries an ON CONFLICT (email) DO UPDATE clause, so a first
// login creates the record and every subsequent login refreshes the name
// in the same statement. The RETURNING clause hands back the canonical
// database representation either way; the caller cannot tell (and does not
// need to tell) which path was taken.
func (r *userRepository) UpsertUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var storedUser models.User
	row := r.db.QueryRowContext(ctx, upsertUser, user.ID, user.Email, user.Name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	if err := row.Scan(&storedUser.ID, &storedUser.Email, &storedUser.Name, &storedUser.CreatedAt, &storedUser.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return storedUser, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.ID, &foundUser.Email, &foundUser.Name, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
