// Package api provides the HTTP API server and handlers for the Grammatica server.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/grammatica/grammatica-server/internal/http/response"
	"github.com/grammatica/grammatica-server/internal/metrics"
	"github.com/grammatica/grammatica-server/internal/ratelimit"
	"github.com/grammatica/grammatica-server/internal/store"
)

// Version is reported in the OpenAPI document.
const Version = "1.0.0"

// Options tunes the HTTP layer.
type Options struct {
	// AllowedOrigins for CORS. Empty means "*".
	AllowedOrigins []string
	// LoginPerMinute and LoginBurst bound login attempts per client IP.
	LoginPerMinute int
	LoginBurst     int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	db              store.Pinger
	services        *Services
	metrics         *metrics.Metrics
	authRateLimiter *ratelimit.KeyedRateLimiter
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(db store.Pinger, services *Services, m *metrics.Metrics, opts Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.LoginPerMinute <= 0 {
		opts.LoginPerMinute = 20
	}
	if opts.LoginBurst <= 0 {
		opts.LoginBurst = 10
	}

	s := &Server{
		db:              db,
		services:        services,
		metrics:         m,
		authRateLimiter: ratelimit.PerMinute(opts.LoginPerMinute, opts.LoginBurst),
		router:          chi.NewRouter(),
		logger:          logger,
	}

	// Middleware must be installed before humachi registers its doc routes.
	s.setupMiddleware(opts.AllowedOrigins)

	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "route not found", s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, s.logger)
	})
	s.router.Handle("/metrics", m.Handler())

	humaConfig := huma.DefaultConfig("Grammatica API", Version)
	// Drop the schema link transformer: envelopes carry no "$schema" key
	// and responses no Link header.
	humaConfig.CreateHooks = nil
	humaConfig.Info.Description = "CRUD API over Dutch grammar data, police station locations and a small book catalogue."
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerResourceRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	s.authRateLimiter.Stop()
}
