// Package response writes the JSON envelope for handlers that run outside
// the typed API, such as router fallbacks and panics.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
)

// ErrorEnvelope is the failure body shared by every endpoint.
// The typed API renders the same shape through its own error type.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// Error writes an error envelope. The code is derived from status.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	JSON(w, status, ErrorEnvelope{
		Message: message,
		Code:    string(domainerrors.CodeForStatus(status)),
	}, logger)
}

// NotFound writes a 404 envelope.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, logger)
}

// MethodNotAllowed writes a 405 envelope.
func MethodNotAllowed(w http.ResponseWriter, logger *slog.Logger) {
	JSON(w, http.StatusMethodNotAllowed, ErrorEnvelope{
		Message: "method not allowed",
		Code:    "METHOD_NOT_ALLOWED",
	}, logger)
}

// InternalError writes a 500 envelope.
func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, logger)
}
