package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the generic not-found condition. Every entity-specific
	// not-found error below wraps it.
	ErrNotFound = errors.New("record is not found")

	// ErrEmailAlreadyExists is returned when sign-up hits the unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrUserNotFound         = notFound("user")
	ErrQRCodeNotFound       = notFound("qr code")
	ErrFeedbackNotFound     = notFound("feedback")
	ErrCampaignNotFound     = notFound("campaign")
	ErrProviderNotFound     = notFound("provider")
	ErrNotificationNotFound = notFound("notification")
	ErrBenchmarkNotFound    = notFound("benchmark")

	// ErrSnapshotNotFound is returned by the client cache for a missing key.
	ErrSnapshotNotFound = notFound("snapshot")

	// ErrInvalidReference is returned when a row points to a QR code or user
	// that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")

	// ErrNoStorageConfigured is returned when neither S3 nor a local
	// directory is configured for uploads.
	ErrNoStorageConfigured = errors.New("object storage is not configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

type notFoundError struct {
	entity string
}

func notFound(entity string) error {
	return &notFoundError{entity: entity}
}

func (e *notFoundError) Error() string {
	return e.entity + " is not found"
}

func (e *notFoundError) Unwrap() error {
	return ErrNotFound
}
