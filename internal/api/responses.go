package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"modelarena/internal/service"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages. Error
// carries the machine-readable kind, Message the human-readable description.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// StatusResponse defines a generic success response, typically for operations
// like DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// InfoResponse is the liveness/info payload served at the root route.
type InfoResponse struct {
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

// respondWithError is the centralized error handling function for the API
// layer. It runs every error through the classifier, so the single-chat path
// surfaces exactly the same (status, kind, message) triple the compare path
// embeds per result item.
func respondWithError(w http.ResponseWriter, err error) {
	classification := service.ClassifyError(err)

	// The original, more detailed error is logged for debugging purposes,
	// while the classified message is sent to the client.
	slog.Warn("Responding with error",
		"status_code", classification.Status,
		"kind", classification.Kind,
		"internal_error", err,
	)

	respondWithJSON(w, classification.Status, ErrorResponse{
		Error:   classification.Kind,
		Message: classification.Message,
	})
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
