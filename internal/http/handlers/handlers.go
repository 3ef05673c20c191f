package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/playstack/game-catalog-service/internal/app/games"
	"github.com/playstack/game-catalog-service/internal/app/result"
	domaingames "github.com/playstack/game-catalog-service/internal/domain/games"
	"github.com/playstack/game-catalog-service/internal/logging"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler wires HTTP routes to the catalog and auth services.
type Handler struct {
	svc    *games.Service
	auth   Authenticator
	ready  Pinger
	logger *slog.Logger
}

// NewHandler constructs a Handler. auth and ready may be nil.
func NewHandler(svc *games.Service, auth Authenticator, ready Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		auth:   auth,
		ready:  ready,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic by pinging the store.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready.Ping(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "error", err)
			writeError(w, r, http.StatusServiceUnavailable, "store unavailable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ListGames returns every game in the catalog.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	res := h.svc.List(r.Context())
	if !res.IsSuccess() {
		writeFailure(w, r, res.Kind, res.Errors, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served games", logging.FieldCount, len(res.Value))
	writeJSON(w, http.StatusOK, res.Value, h.logger)
}

// GetGame returns a single game.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	res := h.svc.GetByID(r.Context(), id)
	if !res.IsSuccess() {
		writeFailure(w, r, res.Kind, res.Errors, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res.Value, h.logger)
}

// CreateGame validates and stores a new game.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var in *domaingames.Input
	if err := decodeBody(w, r, &in); err != nil {
		writeFailure(w, r, result.KindValidation, []string{err.Error()}, h.logger)
		return
	}
	res := h.svc.Create(r.Context(), in)
	if !res.IsSuccess() {
		writeFailure(w, r, res.Kind, res.Errors, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "game created", logging.FieldGameID, res.Value.ID)
	w.Header().Set("Location", "/game/"+strconv.FormatInt(res.Value.ID, 10))
	writeJSON(w, http.StatusCreated, res.Value, h.logger)
}

// UpdateGame overwrites an existing game.
func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	var in *domaingames.Input
	if err := decodeBody(w, r, &in); err != nil {
		writeFailure(w, r, result.KindValidation, []string{err.Error()}, h.logger)
		return
	}
	res := h.svc.Update(r.Context(), id, in)
	if !res.IsSuccess() {
		writeFailure(w, r, res.Kind, res.Errors, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "game updated", logging.FieldGameID, id)
	writeJSON(w, http.StatusOK, res.Value, h.logger)
}

// DeleteGame removes a game.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	res := h.svc.Delete(r.Context(), id)
	if !res.IsSuccess() {
		writeFailure(w, r, res.Kind, res.Errors, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "game deleted", logging.FieldGameID, id)
	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
