package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playstack/game-catalog-service/internal/app/result"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/http/respond"
	"github.com/playstack/game-catalog-service/internal/logging"
)

const maxBodyBytes = 1 << 20

var (
	errEmptyBody     = errors.New("request body is required")
	errMalformedBody = errors.New("request body must be valid JSON")
	errBodyTooLarge  = errors.New("request body is too large")
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	respond.JSON(w, status, payload, logger)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	respond.Error(w, r, status, message, logger)
}

// writeFailure maps a failed Result onto its HTTP status and error list.
func writeFailure(w http.ResponseWriter, r *http.Request, kind result.Kind, messages []string, logger *slog.Logger) {
	respond.Errors(w, r, statusFor(kind), messages, logger)
}

func statusFor(kind result.Kind) int {
	switch kind {
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody reads a JSON request body into dest.
// Field decode errors keep their own message; other failures collapse to a generic one.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		var fieldErr *domaingames.DecodeError
		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &tooLarge):
			return errBodyTooLarge
		case errors.As(err, &fieldErr):
			return fieldErr
		default:
			return errMalformedBody
		}
	}
	if dec.More() {
		return errMalformedBody
	}
	return nil
}

// gameID parses the {id} route parameter. Ids are positive integers.
func gameID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
