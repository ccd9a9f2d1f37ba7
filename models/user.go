package models

import "time"

// User represents an account entity of the Hash Clash application.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is assigned by the database and used only at the persistence layer.
	ID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Always present; uniqueness is enforced by the database.
	Username string `json:"username"`

	// Email is the optional contact address of the user.
	// Nil when the user never provided one. Unique when present.
	Email *string `json:"email,omitempty"`

	// UserType is the role category of the account (e.g. "user", "admin").
	UserType string `json:"user_type"`

	// PasswordHash stores the derived password representation.
	// This value MUST be a hash/KDF output, never plaintext.
	PasswordHash string `json:"-"`

	// IsEmailConfirmed reports whether the stored email address has been
	// verified through a confirmation code.
	IsEmailConfirmed bool `json:"is_email_confirmed"`

	// TOTPKey is the optional secret used for time-based one-time passwords.
	// Nil until the user enrolls in two-factor authentication.
	TOTPKey *string `json:"-"`

	// IsTOTPConfirmed reports whether TOTP enrollment has been completed.
	IsTOTPConfirmed bool `json:"is_totp_confirmed"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// IsActive marks the account as live. Accounts are deactivated by
	// clearing this flag rather than deleting the row.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "hash_clash.users"
}
