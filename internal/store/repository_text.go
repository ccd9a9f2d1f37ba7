package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/models"
	"github.com/jackc/pgerrcode"
)

// textRepository is the PostgreSQL-backed implementation of [TextRepository].
// It executes all ciphertext-record CRUD operations against the
// "hash_clash.texts" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, text_id, encryption_type, etc.).
type textRepository struct {
	*DB
	logger *logger.Logger
}

// NewTextRepository constructs a [TextRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewTextRepository(db *DB, logger *logger.Logger) TextRepository {
	return &textRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateText persists a new ciphertext record. The server-assigned fields
// (ID, CreatedAt, IsActive default) are written back into the returned value
// via the INSERT … RETURNING clause.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound]: the owning user
//     does not exist.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (t *textRepository) CreateText(ctx context.Context, text models.Text) (models.Text, error) {
	log := logger.FromContext(ctx)

	row := t.DB.QueryRowContext(ctx, createText, text.UserID, text.EncryptionType, text.Text)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "textRepository.CreateText").Int64("user_id", text.UserID).Msg("failed to insert text")
		return models.Text{}, mapTextWriteError(err)
	}

	if err := scanText(row, &text); err != nil {
		if postgresError(err) != "" {
			log.Err(err).Str("func", "textRepository.CreateText").Int64("user_id", text.UserID).Msg("failed to insert text")
			return models.Text{}, mapTextWriteError(err)
		}
		log.Err(err).Str("func", "textRepository.CreateText").Msg("failed to scan text row")
		return models.Text{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return text, nil
}

// GetTextByID retrieves a text record by its identifier, regardless of owner
// or active state. Returns [ErrTextNotFound] when the row does not exist.
func (t *textRepository) GetTextByID(ctx context.Context, textID int64) (models.Text, error) {
	log := logger.FromContext(ctx)

	var found models.Text
	row := t.DB.QueryRowContext(ctx, findTextByID, textID)

	if err := scanText(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "textRepository.GetTextByID").Int64("text_id", textID).Msg("text not found")
			return models.Text{}, ErrTextNotFound
		}
		log.Err(err).Str("func", "textRepository.GetTextByID").Int64("text_id", textID).Msg("failed to scan text row")
		return models.Text{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetTextByIDAndUser retrieves a text record only when it is owned by the
// given user. Used by the application tier for ownership checks.
// Returns [ErrTextNotFound] when no such row exists.
func (t *textRepository) GetTextByIDAndUser(ctx context.Context, textID, userID int64) (models.Text, error) {
	log := logger.FromContext(ctx)

	var found models.Text
	row := t.DB.QueryRowContext(ctx, findTextByIDAndUser, textID, userID)

	if err := scanText(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "textRepository.GetTextByIDAndUser").
				Int64("text_id", textID).
				Int64("user_id", userID).
				Msg("text not found for user")
			return models.Text{}, ErrTextNotFound
		}
		log.Err(err).Str("func", "textRepository.GetTextByIDAndUser").Int64("text_id", textID).Msg("failed to scan text row")
		return models.Text{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateText applies a partial update described by update. Only non-nil
// fields are touched; the UPDATE is built dynamically.
//
// Returns [ErrBuildingSQLQuery] when no field is set and [ErrTextNotFound]
// when no row matches the id/user pair.
func (t *textRepository) UpdateText(ctx context.Context, update models.TextUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTextQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "textRepository.UpdateText").
			Int64("text_id", update.ID).
			Msg("failed to build update query")
		return err
	}

	result, execErr := t.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "textRepository.UpdateText").
			Int64("text_id", update.ID).
			Int64("user_id", update.UserID).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "textRepository.UpdateText").
			Int64("text_id", update.ID).
			Int64("user_id", update.UserID).
			Msg("text not found")
		return ErrTextNotFound
	}

	log.Info().
		Str("func", "textRepository.UpdateText").
		Int64("text_id", update.ID).
		Msg("successfully updated text")

	return nil
}

// DeleteText performs a soft delete: the active flag is cleared and the row
// stays in place. Hard removal only ever happens through the owner-deletion
// cascade. Returns [ErrTextNotFound] when no row matches the id/user pair.
func (t *textRepository) DeleteText(ctx context.Context, textID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := t.DB.ExecContext(ctx, softDeleteText, textID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "textRepository.DeleteText").
			Int64("text_id", textID).
			Int64("user_id", userID).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "textRepository.DeleteText").
			Int64("text_id", textID).
			Int64("user_id", userID).
			Msg("text not found")
		return ErrTextNotFound
	}

	return nil
}

// ListUserTexts retrieves the texts owned by filter.UserID, narrowed by the
// optional active-state and encryption-type filters, newest first.
//
// Returns an empty slice when no records match.
func (t *textRepository) ListUserTexts(ctx context.Context, filter models.TextFilter) ([]models.Text, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserTextsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "textRepository.ListUserTexts").
			Int64("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := t.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "textRepository.ListUserTexts").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing user texts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return collectTexts(ctx, rows, "textRepository.ListUserTexts")
}

// ListAllTexts retrieves every text record in the store, newest first.
// Intended for administrative listings.
func (t *textRepository) ListAllTexts(ctx context.Context) ([]models.Text, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := t.DB.QueryContext(ctx, listAllTexts)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "textRepository.ListAllTexts").
			Msg("failed to execute query for listing all texts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return collectTexts(ctx, rows, "textRepository.ListAllTexts")
}

// collectTexts drains rows into a slice, surfacing scan and iteration errors
// with the caller's function name attached to the log entry.
func collectTexts(ctx context.Context, rows *sql.Rows, funcName string) ([]models.Text, error) {
	log := logger.FromContext(ctx)

	results := make([]models.Text, 0, 50)

	for rows.Next() {
		var item models.Text

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.EncryptionType,
			&item.Text,
			&item.CreatedAt,
			&item.IsActive,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan text row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// mapTextWriteError translates driver errors raised by text-table writes into
// the repository's sentinel errors.
func mapTextWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrUserNotFound
	case "":
		return err
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}

func scanText(row *sql.Row, text *models.Text) error {
	return row.Scan(
		&text.ID,
		&text.UserID,
		&text.EncryptionType,
		&text.Text,
		&text.CreatedAt,
		&text.IsActive,
	)
}
