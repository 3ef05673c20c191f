package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playstack/game-catalog-service/internal/http/handlers"
	"github.com/playstack/game-catalog-service/internal/http/middleware"
	"github.com/playstack/game-catalog-service/internal/metrics"
)

// RouterOptions carries the cross-cutting dependencies of the router.
// A nil Verifier leaves write routes open.
type RouterOptions struct {
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Verifier middleware.TokenVerifier
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(opts.Logger, opts.Metrics))
	r.Use(middleware.Recoverer(opts.Logger))
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Post("/login", handler.Login)

	r.Get("/games", handler.ListGames)
	r.Get("/game/{id}", handler.GetGame)

	r.Group(func(r chi.Router) {
		if opts.Verifier != nil {
			r.Use(middleware.RequireToken(opts.Verifier, opts.Logger))
		}
		r.Post("/game", handler.CreateGame)
		r.Put("/game/{id}", handler.UpdateGame)
		r.Delete("/game/{id}", handler.DeleteGame)
	})
	return r
}
