package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same user name already exists.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCarNotFound is returned when a car lookup, update or delete matches
	// no row owned by the caller.
	ErrCarNotFound = errors.New("car not found")

	// ErrTransientInfra is returned when the database is unreachable or
	// reports a condition that may clear on retry (connection loss,
	// serialization failure, server starting up).
	ErrTransientInfra = errors.New("database temporarily unavailable")
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

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrConfiguringSession is returned when a freshly acquired connection
	// rejects one of the per-session settings.
	ErrConfiguringSession = errors.New("failed to configure database session")
)
