// Package metrics exposes Prometheus instruments for evaluations, sessions and
// HTTP traffic on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
)

const namespace = "circuitlab"

// Outcome labels for circuitlab_evaluations_total.
const (
	OutcomeDark    = "dark"
	OutcomeLit     = "lit"
	OutcomeShorted = "shorted"
)

// Metrics holds the Prometheus instruments on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	mu   sync.Mutex
	live map[string]struct{} // session IDs started by this process

	evaluations  *prometheus.CounterVec
	evalDuration *prometheus.HistogramVec
	sessions     prometheus.Gauge
	requests     *prometheus.CounterVec
	reqDuration  *prometheus.HistogramVec
}

// New registers all instruments plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		live:     make(map[string]struct{}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Circuit evaluations by circuit and outcome.",
		}, []string{"circuit", "outcome"}),
		evalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of one circuit evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"circuit"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions started and not yet ended by this process.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(
		m.evaluations, m.evalDuration, m.sessions, m.requests, m.reqDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Outcome classifies a result for the outcome label.
func Outcome(res circuit.Result) string {
	switch {
	case res.Shorted:
		return OutcomeShorted
	case res.LitCount() > 0:
		return OutcomeLit
	default:
		return OutcomeDark
	}
}

// ObserveEvaluation records one evaluation.
func (m *Metrics) ObserveEvaluation(name string, res circuit.Result, took time.Duration) {
	m.evaluations.WithLabelValues(name, Outcome(res)).Inc()
	m.evalDuration.WithLabelValues(name).Observe(took.Seconds())
}

// SessionHooks feeds session.Manager events into the instruments.
// Ending a session this process did not start, such as one restored from a
// persistent store after a restart, leaves the gauge untouched.
func (m *Metrics) SessionHooks() session.Hooks {
	return session.Hooks{
		OnEvaluate: m.ObserveEvaluation,
		OnStart:    m.sessionStarted,
		OnEnd:      m.sessionEnded,
	}
}

func (m *Metrics) sessionStarted(s *session.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[s.ID]; ok {
		return
	}
	m.live[s.ID] = struct{}{}
	m.sessions.Inc()
}

func (m *Metrics) sessionEnded(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[id]; !ok {
		return
	}
	delete(m.live, id)
	m.sessions.Dec()
}

// Middleware counts requests by chi route pattern, so path parameters do not
// explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.reqDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
