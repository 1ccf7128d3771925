package api

import (
	"encoding/json"
	"net/http"

	"jirao/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the taxonomy to an HTTP status; unknown errors become an
// opaque 500 so internals never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
