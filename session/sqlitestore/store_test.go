package sqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
	"github.com/katalvlaran/circuitlab/session/sessiontest"
	"github.com/katalvlaran/circuitlab/session/sqlitestore"
)

func TestSQLiteStore_Contract(t *testing.T) {
	s, err := sqlitestore.Open(filepath.Join(t.TempDir(), "sessions.sqlite"))
	require.NoError(t, err)
	defer s.Close()

	sessiontest.RunStoreContract(t, s)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "sessions.sqlite")

	s, err := sqlitestore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, &session.Session{ID: "s1", Circuit: "not-gate", State: circuit.SwitchState{"S1": true}, Version: 2}))
	require.NoError(t, s.Close())

	s, err = sqlitestore.Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.State.Closed("S1"))
	assert.Equal(t, 2, got.Version)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := sqlitestore.Open("")
	assert.Error(t, err)
}
