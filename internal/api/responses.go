package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "inner-story/backend/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse defines a generic informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint, reporting the provider
// the next chat request would use.
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps the sentinel errors from the service layer to HTTP status codes and
// formats a standard JSON error response. The mapping keeps non-retryable
// failures (validation, configuration) distinguishable from transient remote
// failures (provider call), so clients can decide whether retrying makes sense.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation),
		errors.Is(err, app_errors.ErrConfiguration),
		errors.Is(err, app_errors.ErrUnsupportedProvider):
		// The service-layer message for these is already descriptive and
		// safe to show; retrying without changing request or environment
		// will not help.
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrProviderCall):
		statusCode = http.StatusBadGateway
		message = "The AI provider call failed. Retrying may succeed."
	case errors.Is(err, app_errors.ErrIntegrationUnavailable):
		statusCode = http.StatusInternalServerError
		message = "The selected AI provider is not available in this deployment."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
