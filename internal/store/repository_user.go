package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and security-state changes against the
// "hash_clash.users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, defaults).
//
// Error handling:
//   - unique_violation (23505) on the username constraint → [ErrUsernameTaken].
//   - unique_violation (23505) on the email constraint → [ErrEmailTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.UserType, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error: insert failed")
		return models.User{}, mapUserWriteError(err)
	}

	// scan saved user from db
	if err := scanUser(row, &user); err != nil {
		if postgresError(err) != "" {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error: insert failed")
			return models.User{}, mapUserWriteError(err)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// GetUserByID retrieves an active user by its identifier.
// Returns [ErrUserNotFound] when no active row matches.
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.GetUserByID").Int64("user_id", userID).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetUserByLogin retrieves an active user whose username or email matches the
// provided login string.
// Returns [ErrUserNotFound] when no active row matches.
func (r *userRepository) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByLogin, login)

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "*userRepository.GetUserByLogin").Str("login", login).Msg("user not found")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByLogin").Str("login", login).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdatePasswordHash replaces the stored password hash of an active user.
// Returns [ErrUserNotFound] when the user does not exist or is deactivated.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	return r.execUserUpdate(ctx, "*userRepository.UpdatePasswordHash", updatePasswordHash, userID, passwordHash)
}

// ConfirmEmail stores email on the user row and raises the confirmation flag.
// Both changes happen in a single statement so a confirmed address can never
// be observed without its flag.
//
// Error handling:
//   - unique_violation on the email constraint → [ErrEmailTaken].
//   - no active row matched → [ErrUserNotFound].
func (r *userRepository) ConfirmEmail(ctx context.Context, userID int64, email string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, confirmUserEmail, userID, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConfirmEmail").Int64("user_id", userID).Msg("error: update failed")
		return mapUserWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.ConfirmEmail").Int64("user_id", userID).Msg("user not found")
		return ErrUserNotFound
	}

	return nil
}

// EnableTOTP stores the TOTP secret and raises the confirmation flag.
// Returns [ErrUserNotFound] when the user does not exist or is deactivated.
func (r *userRepository) EnableTOTP(ctx context.Context, userID int64, totpKey string) error {
	return r.execUserUpdate(ctx, "*userRepository.EnableTOTP", enableUserTOTP, userID, totpKey)
}

// DisableTOTP clears the TOTP secret and lowers the confirmation flag.
// Returns [ErrUserNotFound] when the user does not exist or is deactivated.
func (r *userRepository) DisableTOTP(ctx context.Context, userID int64) error {
	return r.execUserUpdate(ctx, "*userRepository.DisableTOTP", disableUserTOTP, userID)
}

// DeactivateUser soft-deletes the account by clearing its active flag.
// The row and all owned texts and codes remain in place.
func (r *userRepository) DeactivateUser(ctx context.Context, userID int64) error {
	return r.execUserUpdate(ctx, "*userRepository.DeactivateUser", deactivateUser, userID)
}

// DeleteUser removes the user row. The database cascades the deletion to all
// texts and temp codes owned by the user, so no orphan rows can remain.
// Returns [ErrUserNotFound] when the row does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	return r.execUserUpdate(ctx, "*userRepository.DeleteUser", deleteUser, userID)
}

// execUserUpdate runs a single-row write statement keyed by user id and
// translates a zero affected-row count into [ErrUserNotFound].
func (r *userRepository) execUserUpdate(ctx context.Context, funcName, query string, userID int64, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error: statement failed")
		return mapUserWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Int64("user_id", userID).Msg("user not found")
		return ErrUserNotFound
	}

	return nil
}

// mapUserWriteError translates driver errors raised by user-table writes into
// the repository's sentinel errors. Unique violations are disambiguated by
// the violated constraint name.
func mapUserWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		if strings.Contains(postgresConstraint(err), "email") {
			return ErrEmailTaken
		}
		return ErrUsernameTaken
	case "":
		return err
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.UserType,
		&user.PasswordHash,
		&user.IsEmailConfirmed,
		&user.TOTPKey,
		&user.IsTOTPConfirmed,
		&user.CreatedAt,
		&user.IsActive,
	)
}
