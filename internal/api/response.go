package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/founditapp/foundit/internal/lifecycle"
	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// domainError maps a domain failure onto the API error taxonomy: validation
// and invalid-status are 400, unknown IDs are 404, anything else is a 500
// with a generic body and the full error logged server-side.
func domainError(w http.ResponseWriter, err error, operation string) {
	switch {
	case model.IsValidation(err):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, lifecycle.ErrInvalidStatus):
		jsonError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, operation+" not found")
	default:
		slog.Error("internal error", "operation", operation, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
