// Package respond writes JSON responses and error bodies.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/playstack/game-catalog-service/internal/http/requestutil"
	"github.com/playstack/game-catalog-service/internal/logging"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type errorsBody struct {
	Errors    []string `json:"errors"`
	RequestID string   `json:"requestId,omitempty"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

// Error writes a single transport-level error.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	JSON(w, status, errorBody{Error: message, RequestID: requestID(r)}, logger)
}

// Errors writes the ordered messages of a failed operation.
func Errors(w http.ResponseWriter, r *http.Request, status int, messages []string, logger *slog.Logger) {
	if messages == nil {
		messages = []string{}
	}
	JSON(w, status, errorsBody{Errors: messages, RequestID: requestID(r)}, logger)
}

func requestID(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := requestutil.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}
