package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError mirrors the REST error body for responses produced before
// a handler runs.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
