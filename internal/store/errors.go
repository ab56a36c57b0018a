package store

import "errors"

// Low-level database operation errors. These are returned (wrapped) by the
// sqlite storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

// ErrEmptyKey is returned by every StorageService method called with "".
var ErrEmptyKey = errors.New("empty storage key")

var errCorruptSnapshot = errors.New("snapshot is not a JSON object")
