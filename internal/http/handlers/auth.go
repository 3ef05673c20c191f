package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/playstack/game-catalog-service/internal/app/auth"
)

// Authenticator issues tokens for a username and password.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (auth.Token, error)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if h.auth == nil {
		writeError(w, r, http.StatusUnauthorized, "invalid username or password", h.logger)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, "invalid username or password", h.logger)
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "internal server error", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token.Value,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
	}, h.logger)
}
