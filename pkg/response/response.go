// Package response writes the flat JSON bodies the storefront and admin
// console expect: payloads as-is, failures as {"error": "..."} and simple
// acknowledgements as {"message": "..."}.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends an arbitrary payload with the given status.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	write(w, status, payload)
}

// Success sends a 200 JSON response with the payload as-is.
func Success(w http.ResponseWriter, payload interface{}) {
	write(w, http.StatusOK, payload)
}

// Message sends a 200 {"message": msg} acknowledgement.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, map[string]string{"message": msg})
}

// Error sends {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, map[string]string{"error": msg})
}

// Unauthorized sends a 401 {"error":"Unauthorized"}.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// NotFound sends a 404 {"error":"Not found"}.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

// Internal sends a 500 {"error":"Internal server error"}.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
