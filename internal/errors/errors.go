package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrInvalidRequest signifies a structurally invalid request: a missing or
	// empty message list, a missing model list, or a model list outside the
	// allowed 1..5 range. Mapped to 400 Bad Request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidMessage signifies that an individual conversation message is
	// malformed: missing role or content, or a role outside the fixed set of
	// user, assistant and system. Mapped to 400 Bad Request.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrConfiguration signifies that the server is missing configuration it
	// needs to serve the request, such as the upstream API credential. It is
	// raised before any upstream call is attempted.
	// Mapped to 500 Internal Server Error.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource (e.g., creating an
	// account with a username that is already taken).
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
