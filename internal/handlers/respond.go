// Package handlers exposes the service over HTTP.
package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.WithError(err).Error("Failed to encode response")
		}
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto HTTP statuses. Validation and
// not-found details are safe to echo back; storage failures are logged and
// reported generically.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case apperr.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeBody(r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return apperr.NewValidation("body", "invalid JSON")
	}
	return nil
}
