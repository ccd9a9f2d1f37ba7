package models

import "time"

// Temp code purposes issued by the application tier. The storage layer
// stores the tag as-is; these constants only name the well-known values.
const (
	CodeTypeEmailConfirmation = "email_confirmation"
	CodeTypeLoginConfirmation = "login_confirmation"
)

// TempCode is a short-lived verification code bound to a user and a purpose.
type TempCode struct {
	// ID is the database-assigned identifier of the code.
	ID int64 `json:"-"`

	// UserID references the owning user. Deleting the user deletes the code.
	UserID int64 `json:"user_id"`

	// Code is the fixed-length verification code value (at most 6 characters).
	Code string `json:"code"`

	// CodeType tags the purpose of the code, e.g. [CodeTypeEmailConfirmation].
	// At most 50 characters.
	CodeType string `json:"code_type"`

	// CreatedAt is the timestamp when the code was issued.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment after which the code is no longer consumable.
	// Always strictly later than CreatedAt.
	ExpiresAt time.Time `json:"expires_at"`

	// IsUsed reports whether the code has been consumed. The transition is
	// one-way: once true it never reverts.
	IsUsed bool `json:"is_used"`

	// IsActive marks the code as live; superseded codes are deactivated
	// without being removed.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the TempCode model.
func (c TempCode) TableName() string {
	return "hash_clash.temp_codes"
}
