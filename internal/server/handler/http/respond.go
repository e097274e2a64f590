package http

import (
	"encoding/json"
	"net/http"
)

// writeMessage writes a JSON {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// writeError writes a JSON {"error": ...} body with the given status.
// The message must already be client-safe; internals are logged, not echoed.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
