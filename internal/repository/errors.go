package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error, returned when a
// lookup for a single document finds nothing.
//
// The service layer checks for this error and translates it into a
// domain-level outcome (implicit creation for saves, `app_errors.ErrNotFound`
// for gets), decoupling business logic from the data access implementation.
// It abstracts away the underlying driver's error (mongo.ErrNoDocuments,
// sql.ErrNoRows).
var ErrNotFound = errors.New("repository: not found")
