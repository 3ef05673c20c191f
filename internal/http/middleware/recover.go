package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/playstack/game-catalog-service/internal/http/respond"
	"github.com/playstack/game-catalog-service/internal/logging"
)

// Recoverer turns a panic in a handler into a logged 500 response.
func Recoverer(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger := logging.FromContext(r.Context(), baseLogger)
				logging.Error(logger, "panic recovered", fmt.Errorf("%v", rec), "stack", string(debug.Stack()))
				respond.Error(w, r, http.StatusInternalServerError, "internal server error", logger)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
