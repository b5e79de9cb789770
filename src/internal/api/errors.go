package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/maksimkurb/keen-menu/src/internal/errors"
	"github.com/maksimkurb/keen-menu/src/internal/log"
	"github.com/maksimkurb/keen-menu/src/internal/menu"
)

const validationFailedMessage = "Validation failed"

// WriteError writes {"error": message} with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}

// WriteValidationError writes a 400 Bad Request listing the failed rules.
func WriteValidationError(w http.ResponseWriter, violations menu.Violations) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:    validationFailedMessage,
		Messages: violations.Messages(),
	})
}

// writeStoreError maps store errors to responses.
func writeStoreError(w http.ResponseWriter, err error) {
	var domainErr *apperrors.Error
	switch {
	case errors.Is(err, apperrors.ErrNotFound) && errors.As(err, &domainErr):
		WriteNotFound(w, domainErr.Message)
	default:
		log.Errorf("Unexpected store error: %v", err)
		WriteInternalError(w, "Internal server error")
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnf("Failed to encode response: %v", err)
	}
}
