package repository

import "errors"

// This file defines custom errors specific to the repository layer.
// This allows the repository to communicate outcomes in a database-agnostic way.
// The service layer checks for these sentinels and translates them into
// domain-level errors, decoupling business logic from the data access
// implementation and abstracting away driver errors like `sql.ErrNoRows`.

var (
	// ErrNotFound is returned when a query for a single entity finds no rows.
	ErrNotFound = errors.New("repository: not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, such as creating an account with a taken username.
	ErrDuplicate = errors.New("repository: duplicate key")
)
