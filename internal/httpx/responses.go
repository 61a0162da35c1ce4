package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail points at a single rejected field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JSON writes v as the raw response body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes an error body. Store errors must be mapped to a generic
// message by the caller before reaching here; raw error strings are never
// sent to clients.
func JSONError(w http.ResponseWriter, statusCode int, message string, details []ErrorDetail) {
	JSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
