package models

import "time"

// Text is a ciphertext record owned by exactly one user.
type Text struct {
	// ID is the database-assigned identifier of the record.
	ID int64 `json:"-"`

	// UserID references the owning user. The database enforces the
	// reference and cascades deletion of the owner to its texts.
	UserID int64 `json:"user_id"`

	// EncryptionType tags the scheme the payload was produced with
	// (e.g. "rsa", "grasshopper").
	EncryptionType string `json:"encryption_type"`

	// Text is the ciphertext payload itself. The storage layer treats it
	// as opaque.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// IsActive marks the record as live; soft deletion clears the flag.
	IsActive bool `json:"is_active"`
}

// TextUpdate describes a partial update of a [Text] record. Nil fields are
// left untouched.
type TextUpdate struct {
	ID     int64
	UserID int64

	EncryptionType *string
	Text           *string
	IsActive       *bool
}

// TextFilter narrows [Text] listings. UserID is mandatory; the optional
// fields are applied only when non-nil.
type TextFilter struct {
	UserID         int64
	IsActive       *bool
	EncryptionType *string
}

// TableName returns the name of the database table
// associated with the Text model.
func (t Text) TableName() string {
	return "hash_clash.texts"
}
