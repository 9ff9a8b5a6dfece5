package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
)

// Websocket message types.
const (
	MsgToggle = "toggle"
	MsgSet    = "set"
	MsgReset  = "reset"
	MsgView   = "view"
	MsgError  = "error"
)

const (
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 5 * time.Second
)

// ClientMsg is sent by the browser: toggle one switch, set several, or reset.
type ClientMsg struct {
	Type   string              `json:"type"`
	Switch string              `json:"switch,omitempty"`
	State  circuit.SwitchState `json:"state,omitempty"`
}

// ServerMsg answers every ClientMsg with either a fresh view or an error.
// The first message after the upgrade is the current view.
type ServerMsg struct {
	Type  string        `json:"type"`
	View  *session.View `json:"view,omitempty"`
	Error string        `json:"error,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	s.logger.Debug("websocket opened", "session_id", id)

	if err := s.send(conn, ServerMsg{Type: MsgView, View: view}); err != nil {
		return
	}
	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if err := s.send(conn, s.apply(r, id, raw)); err != nil {
			break
		}
	}
	s.logger.Debug("websocket closed", "session_id", id)
}

func (s *Server) apply(r *http.Request, id string, raw []byte) ServerMsg {
	var msg ClientMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ServerMsg{Type: MsgError, Error: fmt.Sprintf("%v: %v", errBadRequest, err)}
	}

	var (
		view *session.View
		err  error
	)
	switch msg.Type {
	case MsgToggle:
		view, err = s.sessions.Toggle(r.Context(), id, msg.Switch)
	case MsgSet:
		view, err = s.sessions.Set(r.Context(), id, msg.State)
	case MsgReset:
		view, err = s.sessions.Reset(r.Context(), id)
	default:
		err = fmt.Errorf("%w: unknown message type %q", errBadRequest, msg.Type)
	}
	if err != nil {
		return ServerMsg{Type: MsgError, Error: err.Error()}
	}

	return ServerMsg{Type: MsgView, View: view}
}

func (s *Server) send(conn *websocket.Conn, msg ServerMsg) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))

	return conn.WriteMessage(websocket.TextMessage, b)
}
