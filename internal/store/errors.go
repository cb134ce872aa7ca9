package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateProductID is returned when a catalog row with the same
	// product id already exists. Enforced by the primary key of products.
	ErrDuplicateProductID = errors.New("duplicate product id")

	// ErrUsernameTaken is returned when a principal with the same username
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPrincipalNotFound is returned when no principal matches the lookup.
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrInconsistencyNotSaved is returned when recording an inconsistency
	// affected no row.
	ErrInconsistencyNotSaved = errors.New("inconsistency was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

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
