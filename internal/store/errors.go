package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to create a user fails
	// because another row already holds the same username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when an attempt to create a user or set an
	// email fails because another row already holds the same email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match an active
	// user produces an empty result set, or when an insert references a
	// user id that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTextNotFound is returned when a query or update targets a text
	// record that does not exist or is not owned by the given user.
	ErrTextNotFound = errors.New("text was not found")

	// ErrCodeNotFound is returned when no temp code matches the requested
	// value, type and validity window, or when an update targets a missing
	// code row.
	ErrCodeNotFound = errors.New("temp code was not found")

	// ErrInvalidExpiry is returned when a temp code is submitted with an
	// expiry timestamp that is not strictly later than its creation time.
	// The schema carries no CHECK constraint for this, so the repository
	// enforces it before touching the database.
	ErrInvalidExpiry = errors.New("temp code expiry must be after creation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
