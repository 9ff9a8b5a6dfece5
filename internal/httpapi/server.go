// Package httpapi serves the circuit library and lesson sessions over HTTP,
// plus a websocket per session for live switch toggling.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"

	"github.com/katalvlaran/circuitlab/circuitfile"
	"github.com/katalvlaran/circuitlab/internal/library"
	"github.com/katalvlaran/circuitlab/internal/logging"
	"github.com/katalvlaran/circuitlab/internal/metrics"
	"github.com/katalvlaran/circuitlab/session"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// Server holds the handler dependencies.
type Server struct {
	lib      *library.Library
	sessions *session.Manager
	metrics  *metrics.Metrics
	logger   *slog.Logger
	compress bool
	upgrader websocket.Upgrader
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics instruments requests and stateless evaluations and exposes
// GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithCompression gzips responses for clients that accept it.
// The websocket endpoint is never compressed.
func WithCompression(on bool) Option {
	return func(s *Server) { s.compress = on }
}

// New creates a Server over lib and the session manager.
func New(lib *library.Library, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		lib:      lib,
		sessions: sessions,
		logger:   logging.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(enableCORS)

	r.Get("/sessions/{id}/ws", s.handleWS)

	r.Group(func(r chi.Router) {
		if s.compress {
			r.Use(gzip)
		}

		r.Get("/healthz", s.handleHealth)
		r.Get("/schema", s.handleSchema)
		if s.metrics != nil {
			r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
		}

		r.Get("/circuits", s.handleListCircuits)
		r.Get("/circuits/{name}", s.handleGetCircuit)
		r.Get("/circuits/{name}/mermaid", s.handleMermaid)
		r.Post("/circuits/{name}/evaluate", s.handleEvaluate)

		r.Get("/sessions", s.handleListSessions)
		r.Post("/sessions", s.handleStartSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Delete("/sessions/{id}", s.handleEndSession)
		r.Post("/sessions/{id}/toggle", s.handleToggle)
		r.Put("/sessions/{id}/state", s.handleSetState)
		r.Post("/sessions/{id}/reset", s.handleReset)
	})

	return r
}

func gzip(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) }

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	if _, err := w.Write(circuitfile.Schema()); err != nil {
		s.logger.Warn("schema write failed", "error", err)
	}
}
