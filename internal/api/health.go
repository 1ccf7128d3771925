package api

import "net/http"

// Health reports liveness. Readiness against the database is the deployment's
// concern; this endpoint only says the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
