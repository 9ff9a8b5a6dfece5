package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/circuitfile"
	"github.com/katalvlaran/circuitlab/internal/library"
	"github.com/katalvlaran/circuitlab/internal/presentation"
	"github.com/katalvlaran/circuitlab/session"
)

type circuitDetail struct {
	library.Entry
	Switches []string             `json:"switches"`
	Document circuitfile.Document `json:"document"`
}

type evaluateRequest struct {
	// State overrides the circuit's reset positions.
	State circuit.SwitchState `json:"state"`
}

type evaluateResponse struct {
	Circuit string              `json:"circuit"`
	State   circuit.SwitchState `json:"state"`
	Result  circuit.Result      `json:"result"`
}

func (s *Server) entry(r *http.Request) (library.Entry, error) {
	name := chi.URLParam(r, "name")
	e, ok := s.lib.Entry(name)
	if !ok {
		return e, fmt.Errorf("circuit %q: %w", name, session.ErrUnknownCircuit)
	}

	return e, nil
}

// stateFor merges overrides onto the reset state of e after checking them.
func stateFor(e library.Entry, overrides circuit.SwitchState) (circuit.SwitchState, error) {
	if err := e.File.Circuit.Check(overrides); err != nil {
		return nil, err
	}
	state := e.File.State()
	for id, closed := range overrides {
		state[id] = closed
	}

	return state, nil
}

func (s *Server) handleListCircuits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, s.lib.Entries())
}

func (s *Server) handleGetCircuit(w http.ResponseWriter, r *http.Request) {
	e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, circuitDetail{
		Entry:    e,
		Switches: e.File.Circuit.Switches(),
		Document: circuitfile.Describe(e.File),
	})
}

// handleMermaid renders the circuit with an overlay. The closed query
// parameter lists switches to close on top of the reset state.
func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	overrides := circuit.SwitchState{}
	if raw := r.URL.Query().Get("closed"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				overrides[id] = true
			}
		}
	}
	state, err := stateFor(e, overrides)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res := s.evaluate(e.File.Circuit, state)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	out := presentation.GenerateMermaid(e.File.Circuit, &presentation.Overlay{State: state, Result: &res})
	if _, err := w.Write([]byte(out)); err != nil {
		s.logger.Warn("mermaid write failed", "error", err)
	}
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	e, err := s.entry(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req evaluateRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}
	state, err := stateFor(e, req.State)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, s.logger, http.StatusOK, evaluateResponse{
		Circuit: e.Name,
		State:   state,
		Result:  s.evaluate(e.File.Circuit, state),
	})
}

func (s *Server) evaluate(c *circuit.Circuit, state circuit.SwitchState) circuit.Result {
	start := time.Now()
	res := circuit.Evaluate(c, state)
	if s.metrics != nil {
		s.metrics.ObserveEvaluation(c.Name(), res, time.Since(start))
	}

	return res
}
