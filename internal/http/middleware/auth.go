package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/playstack/game-catalog-service/internal/app/auth"
	"github.com/playstack/game-catalog-service/internal/http/respond"
	"github.com/playstack/game-catalog-service/internal/logging"
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by RequireToken.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims, ok && claims != nil
}

// RequireToken rejects requests without a valid "Authorization: Bearer" token.
func RequireToken(verifier TokenVerifier, baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.FromContext(r.Context(), baseLogger)

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="catalog"`)
				respond.Error(w, r, http.StatusUnauthorized, "missing bearer token", logger)
				return
			}
			claims, err := verifier.Verify(raw)
			if err != nil {
				logging.Warn(logger, "token rejected", "error", err)
				w.Header().Set("WWW-Authenticate", `Bearer realm="catalog", error="invalid_token"`)
				respond.Error(w, r, http.StatusUnauthorized, "invalid or expired token", logger)
				return
			}

			logger = logger.With(logging.FieldUser, claims.Subject, "role", claims.Role)
			ctx := logging.WithLogger(r.Context(), logger)
			ctx = context.WithValue(ctx, claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
