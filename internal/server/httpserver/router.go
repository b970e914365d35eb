// Package httpserver assembles the public HTTP surface: GraphQL, health,
// readiness, metrics and the frontend log sink.
package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/slugmart/slugmart/internal/logging"
	"github.com/slugmart/slugmart/internal/server/observability"
	"github.com/slugmart/slugmart/internal/server/telemetry"
)

const requestTimeout = 30 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerMinute int
	GraphQL            http.Handler
	Metrics            *observability.Metrics
	Ready              Pinger
	Logger             logging.Logger
}

// Router builds the chi router. GraphQL is served at /graphql; the gate
// lives inside the GraphQL handler, so the other routes are unauthenticated.
func Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	if opts.Logger == nil {
		opts.Logger = logging.Nop{}
	}
	allowed := opts.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"*"}
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("X-Frame-Options", "DENY"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
	}
	if opts.Metrics != nil {
		r.Use(observe(opts.Metrics))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready.Ping(req.Context()); err != nil {
				opts.Logger.Warn(req.Context(), "readiness check failed", "error", err)
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.With(middleware.Timeout(requestTimeout)).Post("/log", logSink(opts.Logger))

	gql := telemetry.Middleware("graphql")(opts.GraphQL)
	r.With(middleware.Timeout(requestTimeout)).Handle("/graphql", gql)

	return r
}

// observe records request latency by matched route pattern.
func observe(m *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.ObserveRequest(route, status, time.Since(start))
		})
	}
}

type clientLog struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// logSink accepts log lines from the frontend. Levels other than info and
// error are accepted and dropped.
func logSink(logger logging.Logger) http.HandlerFunc {
	logger = logger.With("module", "client_log")
	return func(w http.ResponseWriter, r *http.Request) {
		var entry clientLog
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&entry); err != nil {
			http.Error(w, "invalid log entry", http.StatusBadRequest)
			return
		}

		switch entry.Level {
		case "info":
			logger.Info(r.Context(), entry.Message, "source", entry.Source)
		case "error":
			logger.Error(r.Context(), entry.Message, "source", entry.Source)
		}
		w.WriteHeader(http.StatusOK)
	}
}
