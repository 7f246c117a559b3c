package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// business rule validation (e.g. an empty message list, or a conversation
	// that opens with an assistant message).
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration signifies that a required credential or setting is
	// missing for the selected AI provider. Retrying will not help until the
	// environment is fixed.
	// Mapped to 400 Bad Request.
	ErrConfiguration = errors.New("provider configuration missing")

	// ErrIntegrationUnavailable signifies that the selected provider has no
	// usable client in this runtime (its capability probe failed at
	// construction time).
	// Mapped to 500 Internal Server Error.
	ErrIntegrationUnavailable = errors.New("provider integration unavailable")

	// ErrProviderCall signifies that the remote provider call failed or timed
	// out. These failures may be transient; clients can reasonably retry.
	// Mapped to 502 Bad Gateway.
	ErrProviderCall = errors.New("provider call failed")

	// ErrUnsupportedProvider signifies that the selected provider identity has
	// no matching adapter. With the fixed identity set this should be
	// unreachable; it exists as a defensive check.
	// Mapped to 400 Bad Request.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrNotFound signifies that a requested resource could not be located.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrStorage signifies that a document-store operation failed
	// (connectivity, write error). No internal retry is performed.
	// Mapped to 500 Internal Server Error.
	ErrStorage = errors.New("storage operation failed")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
