package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/preston-bernstein/umpire-auditor/internal/http/handlers"
	"github.com/preston-bernstein/umpire-auditor/internal/http/middleware"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
)

// NewRouter registers the reporting routes and wraps them with logging and CORS.
// The admin routes are only mounted when admin is non-nil.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder, corsOrigins []string) nethttp.Handler {
	router := mux.NewRouter()
	router.Use(middleware.Middleware(logger, recorder))
	router.NotFoundHandler = middleware.LoggingMiddleware(logger, recorder, handlers.NotFound(logger))

	router.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)

	games := router.PathPrefix("/games").Subrouter()
	games.HandleFunc("/{id:[0-9]+}/scorecard", h.GameScorecard).Methods(nethttp.MethodGet)
	games.HandleFunc("/{id:[0-9]+}/pitches", h.GamePitches).Methods(nethttp.MethodGet)

	reports := router.PathPrefix("/reports").Subrouter()
	reports.HandleFunc("/umpires", h.Umpires).Methods(nethttp.MethodGet)
	reports.HandleFunc("/seasons", h.Seasons).Methods(nethttp.MethodGet)
	reports.HandleFunc("/teams", h.Teams).Methods(nethttp.MethodGet)
	reports.HandleFunc("/blown-strikeouts", h.BlownStrikeouts).Methods(nethttp.MethodGet)
	reports.HandleFunc("/blown-walks", h.BlownWalks).Methods(nethttp.MethodGet)
	reports.HandleFunc("/players", h.Players).Methods(nethttp.MethodGet)

	router.HandleFunc("/ejections", h.Ejections).Methods(nethttp.MethodGet)

	if admin != nil {
		router.HandleFunc("/admin/games/{id:[0-9]+}/audit", admin.AuditGame).Methods(nethttp.MethodPost)
	}

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
	return c.Handler(router)
}
