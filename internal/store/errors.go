package store

import "errors"

// Sentinel errors returned by note stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when the requested note id does not exist.
	ErrNoteNotFound = errors.New("note not found")

	// ErrStoreUnavailable wraps every failure of the underlying database:
	// lost connections, timeouts, rejected statements.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedDSN is returned by [NewStorages] when the database URL
	// scheme does not match any known backend.
	ErrUnsupportedDSN = errors.New("unsupported database URL")
)

// Low-level database operation errors. They are always joined with
// [ErrStoreUnavailable] before leaving the package.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
