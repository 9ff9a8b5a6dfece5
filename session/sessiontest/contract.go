// Package sessiontest holds the behavioural contract every session.Store must
// satisfy. Store implementations call RunStoreContract from their tests.
package sessiontest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
)

// RunStoreContract exercises store against the session.Store contract.
// The store must be empty when the contract starts.
func RunStoreContract(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		in := &session.Session{
			ID:      "s1",
			Circuit: "and-gate",
			State:   circuit.SwitchState{"S1": true, "S2": false},
			Version: 3,
			Updated: at,
		}
		require.NoError(t, store.Save(ctx, in))

		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, in.ID, got.ID)
		assert.Equal(t, in.Circuit, got.Circuit)
		assert.Equal(t, in.State, got.State)
		assert.Equal(t, in.Version, got.Version)
		assert.True(t, in.Updated.Equal(got.Updated))
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &session.Session{ID: "s1", Circuit: "and-gate", State: circuit.SwitchState{"S1": false}, Version: 4, Updated: at}))
		got, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 4, got.Version)
		assert.False(t, got.State.Closed("S1"))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, &session.Session{ID: "s2", Circuit: "or-gate", State: circuit.SwitchState{}, Updated: at}))
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"s1", "s2"}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "s1"))
		_, err := store.Load(ctx, "s1")
		assert.ErrorIs(t, err, session.ErrNotFound)
		require.NoError(t, store.Delete(ctx, "s1"), "deleting twice is fine")

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"s2"}, ids)
	})
}
