package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
	"github.com/katalvlaran/circuitlab/session/sessiontest"
)

func TestMemoryStore_Contract(t *testing.T) {
	sessiontest.RunStoreContract(t, session.NewMemoryStore())
}

func TestMemoryStore_CopiesState(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	in := &session.Session{ID: "s1", State: circuit.SwitchState{"S1": false}}
	require.NoError(t, store.Save(ctx, in))

	in.State["S1"] = true
	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.State.Closed("S1"))

	got.State["S1"] = true
	again, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, again.State.Closed("S1"))
}
