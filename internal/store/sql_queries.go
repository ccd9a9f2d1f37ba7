package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hashclash/storage/models"
)

const (
	createUser = `INSERT INTO hash_clash.users (username, email, user_type, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, user_type, password_hash, is_email_confirmed, totp_key, is_totp_confirmed, created_at, is_active;`

	findUserByID = `SELECT id, username, email, user_type, password_hash, is_email_confirmed, totp_key, is_totp_confirmed, created_at, is_active
    FROM hash_clash.users
    WHERE id = $1 AND is_active = TRUE;`

	findUserByLogin = `SELECT id, username, email, user_type, password_hash, is_email_confirmed, totp_key, is_totp_confirmed, created_at, is_active
    FROM hash_clash.users
    WHERE (username = $1 OR email = $1) AND is_active = TRUE;`

	updatePasswordHash = `UPDATE hash_clash.users
    SET password_hash = $2
    WHERE id = $1 AND is_active = TRUE;`

	confirmUserEmail = `UPDATE hash_clash.users
    SET email = $2, is_email_confirmed = TRUE
    WHERE id = $1 AND is_active = TRUE;`

	enableUserTOTP = `UPDATE hash_clash.users
    SET totp_key = $2, is_totp_confirmed = TRUE
    WHERE id = $1 AND is_active = TRUE;`

	disableUserTOTP = `UPDATE hash_clash.users
    SET totp_key = NULL, is_totp_confirmed = FALSE
    WHERE id = $1 AND is_active = TRUE;`

	deactivateUser = `UPDATE hash_clash.users
    SET is_active = FALSE
    WHERE id = $1;`

	deleteUser = `DELETE FROM hash_clash.users
    WHERE id = $1;`

	createText = `INSERT INTO hash_clash.texts (user_id, encryption_type, text)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, encryption_type, text, created_at, is_active;`

	findTextByID = `SELECT id, user_id, encryption_type, text, created_at, is_active
    FROM hash_clash.texts
    WHERE id = $1;`

	findTextByIDAndUser = `SELECT id, user_id, encryption_type, text, created_at, is_active
    FROM hash_clash.texts
    WHERE id = $1 AND user_id = $2;`

	softDeleteText = `UPDATE hash_clash.texts
    SET is_active = FALSE
    WHERE id = $1 AND user_id = $2;`

	listAllTexts = `SELECT id, user_id, encryption_type, text, created_at, is_active
    FROM hash_clash.texts
    ORDER BY created_at DESC;`

	createTempCode = `INSERT INTO hash_clash.temp_codes (user_id, code, code_type, expires_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, code, code_type, created_at, expires_at, is_used, is_active;`

	markCodeUsed = `UPDATE hash_clash.temp_codes
    SET is_used = TRUE
    WHERE id = $1 AND is_active = TRUE;`

	deactivateUserCodes = `UPDATE hash_clash.temp_codes
    SET is_active = FALSE
    WHERE user_id = $1 AND code_type = $2 AND is_active = TRUE AND is_used = FALSE;`

	deleteExpiredCodes = `DELETE FROM hash_clash.temp_codes
    WHERE expires_at < $1 AND is_active = TRUE;`
)

var textColumns = []string{"id", "user_id", "encryption_type", "text", "created_at", "is_active"}

// buildListUserTextsQuery builds the SELECT for a user's texts, narrowing by
// the optional filter fields. Ordered by creation time, newest first.
func buildListUserTextsQuery(filter models.TextFilter) (string, []any, error) {
	builder := sq.Select(textColumns...).
		From("hash_clash.texts").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.IsActive != nil {
		builder = builder.Where(sq.Eq{"is_active": *filter.IsActive})
	}

	if filter.EncryptionType != nil {
		builder = builder.Where(sq.Eq{"encryption_type": *filter.EncryptionType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateTextQuery builds a dynamic UPDATE touching only the fields set
// in update. Returns [ErrBuildingSQLQuery] when no field is set.
func buildUpdateTextQuery(update models.TextUpdate) (string, []any, error) {
	builder := sq.Update("hash_clash.texts").PlaceholderFormat(sq.Dollar)

	touched := false
	if update.EncryptionType != nil {
		builder = builder.Set("encryption_type", *update.EncryptionType)
		touched = true
	}
	if update.Text != nil {
		builder = builder.Set("text", *update.Text)
		touched = true
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
		touched = true
	}

	if !touched {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder = builder.Where(sq.Eq{"id": update.ID, "user_id": update.UserID})

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetValidCodeQuery builds the SELECT for a consumable temp code:
// matching value and type, still active, unused, and not yet expired at now.
func buildGetValidCodeQuery(userID int64, code, codeType string, now time.Time) (string, []any, error) {
	builder := sq.Select("id", "user_id", "code", "code_type", "created_at", "expires_at", "is_used", "is_active").
		From("hash_clash.temp_codes").
		Where(sq.Eq{
			"user_id":   userID,
			"code":      code,
			"code_type": codeType,
			"is_active": true,
			"is_used":   false,
		}).
		Where(sq.Gt{"expires_at": now}).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
