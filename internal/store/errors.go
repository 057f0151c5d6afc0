package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCNPJAlreadyExists is returned when a company registration fails
	// because the national tax id is already taken.
	ErrCNPJAlreadyExists = errors.New("cnpj already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCompanyProfileNotFound is returned when a company-field operation
	// targets a user that has no companies row. The enclosing transaction
	// is rolled back in full.
	ErrCompanyProfileNotFound = errors.New("company profile was not found")

	// ErrVehicleNotFound is returned when the checkout workflow (or any
	// vehicle lookup) targets a vehicle id that does not exist.
	ErrVehicleNotFound = errors.New("vehicle was not found")

	// ErrVehicleNotAvailable is returned when the checkout workflow reads,
	// under the row lock, an availability other than Available. The vehicle
	// has already been sold or withdrawn; the operation is never retried.
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a dynamic builder produced no SET clauses).
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
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
