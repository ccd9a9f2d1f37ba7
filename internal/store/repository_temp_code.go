package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/models"
	"github.com/jackc/pgerrcode"
)

// tempCodeRepository is the PostgreSQL-backed implementation of
// [TempCodeRepository]. It manages short-lived verification codes in the
// "hash_clash.temp_codes" table.
type tempCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewTempCodeRepository constructs a [TempCodeRepository] backed by the
// provided database connection and logger.
func NewTempCodeRepository(db *DB, logger *logger.Logger) TempCodeRepository {
	return &tempCodeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateCode persists a new verification code and returns it with the
// server-assigned fields populated.
//
// The expiry invariant (ExpiresAt strictly after creation) is enforced here:
// the schema declares no CHECK constraint, so a code whose expiry does not
// lie in the future of its creation time is rejected with [ErrInvalidExpiry]
// before any statement is issued. When CreatedAt is zero the database
// default (NOW()) applies and ExpiresAt is compared against the current time.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound].
//   - string_data_right_truncation / data exceptions → wrapped driver error
//     (code or code_type exceeding the declared column bounds).
func (c *tempCodeRepository) CreateCode(ctx context.Context, code models.TempCode) (models.TempCode, error) {
	log := logger.FromContext(ctx)

	createdAt := code.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if !code.ExpiresAt.After(createdAt) {
		log.Warn().
			Str("func", "tempCodeRepository.CreateCode").
			Int64("user_id", code.UserID).
			Time("expires_at", code.ExpiresAt).
			Msg("rejected code with non-future expiry")
		return models.TempCode{}, ErrInvalidExpiry
	}

	row := c.DB.QueryRowContext(ctx, createTempCode, code.UserID, code.Code, code.CodeType, code.ExpiresAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "tempCodeRepository.CreateCode").Int64("user_id", code.UserID).Msg("failed to insert temp code")
		return models.TempCode{}, mapTempCodeWriteError(err)
	}

	if err := scanTempCode(row, &code); err != nil {
		if postgresError(err) != "" {
			log.Err(err).Str("func", "tempCodeRepository.CreateCode").Int64("user_id", code.UserID).Msg("failed to insert temp code")
			return models.TempCode{}, mapTempCodeWriteError(err)
		}
		log.Err(err).Str("func", "tempCodeRepository.CreateCode").Msg("failed to scan temp code row")
		return models.TempCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	log.Info().
		Str("func", "tempCodeRepository.CreateCode").
		Int64("user_id", code.UserID).
		Str("code_type", code.CodeType).
		Msg("created temp code")

	return code, nil
}

// GetValidCode retrieves a consumable code for the user: matching value and
// type, active, unused, and unexpired at now. Expiry is evaluated at query
// time; expired rows are filtered out, never mutated.
//
// Returns [ErrCodeNotFound] when no such code exists.
func (c *tempCodeRepository) GetValidCode(ctx context.Context, userID int64, code, codeType string, now time.Time) (models.TempCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValidCodeQuery(userID, code, codeType, now)
	if err != nil {
		log.Err(err).
			Str("func", "tempCodeRepository.GetValidCode").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.TempCode{}, err
	}

	var found models.TempCode
	row := c.DB.QueryRowContext(ctx, query, args...)

	if scanErr := scanTempCode(row, &found); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "tempCodeRepository.GetValidCode").
				Int64("user_id", userID).
				Str("code_type", codeType).
				Msg("no valid code found")
			return models.TempCode{}, ErrCodeNotFound
		}
		log.Err(scanErr).Str("func", "tempCodeRepository.GetValidCode").Int64("user_id", userID).Msg("failed to scan temp code row")
		return models.TempCode{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return found, nil
}

// MarkCodeUsed consumes a code by raising its used flag. The transition is
// one-way: no repository operation ever clears the flag, and re-marking an
// already used code is a harmless no-op at the SQL level.
//
// Returns [ErrCodeNotFound] when the code does not exist or is inactive.
func (c *tempCodeRepository) MarkCodeUsed(ctx context.Context, codeID int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, markCodeUsed, codeID)
	if err != nil {
		log.Err(err).
			Str("func", "tempCodeRepository.MarkCodeUsed").
			Int64("code_id", codeID).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "tempCodeRepository.MarkCodeUsed").
			Int64("code_id", codeID).
			Msg("code not found")
		return ErrCodeNotFound
	}

	log.Info().
		Str("func", "tempCodeRepository.MarkCodeUsed").
		Int64("code_id", codeID).
		Msg("marked temp code as used")

	return nil
}

// DeactivateUserCodes clears the active flag on every unused live code the
// user holds for the given purpose. Called before a replacement code is
// issued so that at most one live code per purpose exists.
//
// Returns the number of deactivated rows; zero is not an error.
func (c *tempCodeRepository) DeactivateUserCodes(ctx context.Context, userID int64, codeType string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deactivateUserCodes, userID, codeType)
	if err != nil {
		log.Err(err).
			Str("func", "tempCodeRepository.DeactivateUserCodes").
			Int64("user_id", userID).
			Str("code_type", codeType).
			Msg("failed to execute update query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}

	log.Info().
		Str("func", "tempCodeRepository.DeactivateUserCodes").
		Int64("user_id", userID).
		Str("code_type", codeType).
		Int64("deactivated", affected).
		Msg("deactivated user temp codes")

	return affected, nil
}

// DeleteExpiredCodes removes every active code whose expiry lies before now.
// Used rows that expired are removed as well; the janitor worker calls this
// on an interval.
//
// Returns the number of deleted rows.
func (c *tempCodeRepository) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteExpiredCodes, now)
	if err != nil {
		log.Err(err).
			Str("func", "tempCodeRepository.DeleteExpiredCodes").
			Time("now", now).
			Msg("failed to execute delete query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, affErr := result.RowsAffected()
	if affErr != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}

	log.Info().
		Str("func", "tempCodeRepository.DeleteExpiredCodes").
		Int64("deleted", deleted).
		Msg("cleaned up expired temp codes")

	return deleted, nil
}

// mapTempCodeWriteError translates driver errors raised by temp-code writes
// into the repository's sentinel errors.
func mapTempCodeWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrUserNotFound
	case "":
		return err
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanTempCode(row *sql.Row, code *models.TempCode) error {
	return row.Scan(
		&code.ID,
		&code.UserID,
		&code.Code,
		&code.CodeType,
		&code.CreatedAt,
		&code.ExpiresAt,
		&code.IsUsed,
		&code.IsActive,
	)
}
