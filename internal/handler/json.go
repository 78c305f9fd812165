package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes the API contract exposes. Failure bodies are always
// {"error": CODE} with an optional "message".
const (
	codeInvalidInput       = "INVALID_INPUT"
	codeEmailExists        = "EMAIL_ALREADY_EXISTS"
	codeWeakPassword       = "WEAK_PASSWORD"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthorized       = "UNAUTHORIZED"
	codeUserNotFound       = "USER_NOT_FOUND"
	codeInternal           = "INTERNAL"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status and code.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeErrorMessage is writeError with a human-readable message attached.
func writeErrorMessage(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": code, "message": message})
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
