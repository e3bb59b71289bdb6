package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
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

// CreateUser persists a new user record and returns it with the
// server-assigned UserID. user.Passcode must already hold the digest.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserNameAlreadyExists].
//   - Retryable driver errors → [ErrTransientInfra].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	// create user in db
	if err = r.db.runner(ctx).QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_name", user.UserName).Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserNameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.classify(err))
		}
	}

	return user, nil
}

// FindUserByUserName retrieves the user whose UserName matches userName,
// passcode digest included.
//
// Error handling:
//   - No row → [ErrNoUserWasFound].
//   - Retryable driver errors → [ErrTransientInfra].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUserNameQuery(userName)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUserName").Msg("failed to build query")
		return models.User{}, err
	}

	var foundUser models.User
	if err = sqlscan.Get(ctx, r.db.runner(ctx), &foundUser, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			log.Debug().Str("func", "*userRepository.FindUserByUserName").Str("user_name", userName).Msg("user not found")
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUserName").Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", r.db.classify(err))
	}

	return foundUser, nil
}
