package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/builder"
	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/internal/metrics"
	"github.com/katalvlaran/circuitlab/session"
)

func TestOutcome(t *testing.T) {
	c := builder.NotGate()
	assert.Equal(t, metrics.OutcomeLit, metrics.Outcome(circuit.Evaluate(c, nil)))
	assert.Equal(t, metrics.OutcomeShorted, metrics.Outcome(circuit.Evaluate(c, circuit.SwitchState{"S1": true})))
	assert.Equal(t, metrics.OutcomeDark, metrics.Outcome(circuit.Evaluate(builder.AndGate(), nil)))
}

func TestSessionHooks(t *testing.T) {
	m := metrics.New()
	h := m.SessionHooks()

	h.OnStart(&session.Session{ID: "a"})
	h.OnStart(&session.Session{ID: "b"})
	h.OnEnd("a")
	h.OnEvaluate("not-gate", circuit.Evaluate(builder.NotGate(), nil), time.Millisecond)

	out := scrape(t, m.Handler())
	assert.Contains(t, out, "circuitlab_active_sessions 1")
	assert.Contains(t, out, `circuitlab_evaluations_total{circuit="not-gate",outcome="lit"} 1`)
	assert.Contains(t, out, "circuitlab_evaluation_duration_seconds_count")
}

func TestSessionHooks_UnknownEndKeepsGauge(t *testing.T) {
	m := metrics.New()
	h := m.SessionHooks()

	// a session persisted before a restart is ended by the new process
	h.OnEnd("from-before-restart")
	assert.Contains(t, scrape(t, m.Handler()), "circuitlab_active_sessions 0")

	h.OnStart(&session.Session{ID: "a"})
	h.OnStart(&session.Session{ID: "a"})
	h.OnEnd("a")
	h.OnEnd("a")
	assert.Contains(t, scrape(t, m.Handler()), "circuitlab_active_sessions 0")
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/sessions/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil))
	}

	n, err := testutil.GatherAndCount(m.Registry(), "circuitlab_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one series for both IDs")
	assert.Contains(t, scrape(t, m.Handler()), `route="/sessions/{id}"`)
}

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(b)
}
