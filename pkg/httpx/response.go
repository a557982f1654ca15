package httpx

import (
	"encoding/json"
	"net/http"
)

// validationFailed is the error text of every field-level rejection.
const validationFailed = "Validation failed"

// ErrorResponse is the body of every error response. Rejected actions carry
// the user-facing notice in Error; Fields is only set when request fields
// failed validation.
type ErrorResponse struct {
	Error  string            `json:"error"            example:"please select a customer first"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// ValidationError writes a 422 carrying one message per rejected field.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: validationFailed, Fields: fields})
}

// SafeError returns the message a client may see for err. Domain rejections
// (4xx) pass through verbatim since they are the shop's notices; anything
// that maps to 5xx is replaced by the status text so store or bus internals
// never reach the counter screen.
func SafeError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
