package httpapi_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/internal/httpapi"
)

func TestWebsocket_Toggle(t *testing.T) {
	srv := newServer(t)
	code, _ := do(t, srv, http.MethodPost, "/sessions", `{"circuit":"series-bypass"}`)
	require.Equal(t, http.StatusCreated, code)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/sess-1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg httpapi.ServerMsg
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, httpapi.MsgView, msg.Type)
	assert.Equal(t, 2, msg.View.Result.LitCount())

	require.NoError(t, conn.WriteJSON(httpapi.ClientMsg{Type: httpapi.MsgToggle, Switch: "S1"}))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, httpapi.MsgView, msg.Type, msg.Error)
	assert.False(t, msg.View.Result.IsLit("L1"))
	assert.True(t, msg.View.Result.IsLit("L2"))
	assert.Equal(t, []string{"w1", "S1", "L2", "w2"}, msg.View.Result.Current)

	require.NoError(t, conn.WriteJSON(httpapi.ClientMsg{Type: httpapi.MsgToggle, Switch: "S9"}))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, httpapi.MsgError, msg.Type)
	assert.Contains(t, msg.Error, "S9")

	require.NoError(t, conn.WriteJSON(httpapi.ClientMsg{Type: "explode"}))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, httpapi.MsgError, msg.Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{")))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, httpapi.MsgError, msg.Type)

	require.NoError(t, conn.WriteJSON(httpapi.ClientMsg{Type: httpapi.MsgReset}))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, httpapi.MsgView, msg.Type)
	assert.Equal(t, 2, msg.View.Result.LitCount())
	assert.Equal(t, 2, msg.View.Session.Version)

	// Changes made over the socket are visible to plain HTTP.
	code, body := do(t, srv, http.MethodGet, "/sessions/sess-1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), `"version":2`)
}

func TestWebsocket_Set(t *testing.T) {
	srv := newServer(t)
	code, _ := do(t, srv, http.MethodPost, "/sessions", `{"circuit":"and-gate"}`)
	require.Equal(t, http.StatusCreated, code)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/sess-1/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg httpapi.ServerMsg
	require.NoError(t, conn.ReadJSON(&msg))

	require.NoError(t, conn.WriteJSON(httpapi.ClientMsg{Type: httpapi.MsgSet, State: map[string]bool{"S1": true, "S2": true}}))
	msg = httpapi.ServerMsg{}
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, httpapi.MsgView, msg.Type, msg.Error)
	assert.True(t, msg.View.Result.IsLit("L1"))
}

func TestWebsocket_UnknownSession(t *testing.T) {
	srv := newServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/missing/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
