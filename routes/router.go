package routes

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"masterboxer.com/project-forum/handlers"
	"masterboxer.com/project-forum/services"
)

type Options struct {
	Logger         *slog.Logger
	MetricsEnabled bool
}

// NewRouter mounts the forum API under /api along with the root greeting,
// /health and, when enabled, /metrics. Each API path ends with a route that
// has no method matcher, answering 405 for methods the path does not serve.
//
// Logging and metrics wrap the whole router so unmatched requests are seen too.
func NewRouter(store handlers.Store, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := mux.NewRouter()
	router.NotFoundHandler = handlers.NotFound()
	router.MethodNotAllowedHandler = handlers.MethodNotAllowed()
	router.Use(services.RecordRoute)

	if opts.MetricsEnabled {
		router.Handle("/metrics", services.MetricsHandler()).Methods("GET")
	}
	router.HandleFunc("/", handlers.Root()).Methods("GET")
	router.HandleFunc("/health", handlers.Health(store)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	CreatePostRoutes(store, api)
	CreateCommentRoutes(store, api)

	var h http.Handler = recoverPanics(logger, redirectTrailingSlash(router))
	if opts.MetricsEnabled {
		h = services.InstrumentRequests(h)
	}
	h = logRequests(logger, h)
	return services.TrackRoute(h)
}

// redirectTrailingSlash sends a request for a path missing its trailing
// slash to the canonical path when that one has a route. GET and HEAD get a
// 301; other methods get a 308 so clients resend the same method and body.
func redirectTrailingSlash(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") || routeExists(router, r) {
			router.ServeHTTP(w, r)
			return
		}

		canonical := r.Clone(r.Context())
		canonical.URL.Path += "/"
		if !routeExists(router, canonical) {
			router.ServeHTTP(w, r)
			return
		}

		target := canonical.URL.Path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		status := http.StatusPermanentRedirect
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			status = http.StatusMovedPermanently
		}
		http.Redirect(w, r, target, status)
	})
}

func routeExists(router *mux.Router, r *http.Request) bool {
	var match mux.RouteMatch
	return router.Match(r, &match) && match.MatchErr == nil
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := services.NewStatusWriter(w)

		next.ServeHTTP(sw, r)

		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", services.RouteTemplate(r),
			"status", sw.Status,
			"duration", time.Since(start),
		)
	})
}

func recoverPanics(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"success": false, "error": "Internal server error"}`)) //nolint:errcheck
			}
		}()
		next.ServeHTTP(w, r)
	})
}
