package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy to status codes in one place:
// validation 400, not found 404, anything else a generic 500. Store faults
// are logged with their cause but never leaked to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case usecase.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Something went wrong. Please try again later.",
		})
	}
}
