package redisstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/session"
	"github.com/katalvlaran/circuitlab/session/redisstore"
	"github.com/katalvlaran/circuitlab/session/sessiontest"
)

func newStore(t *testing.T, opts ...redisstore.Option) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	s := redisstore.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = s.Close() })

	return s, mr
}

func TestRedisStore_Contract(t *testing.T) {
	s, _ := newStore(t)
	sessiontest.RunStoreContract(t, s)
}

func TestRedisStore_Prefix(t *testing.T) {
	s, mr := newStore(t, redisstore.WithPrefix("test:"))
	require.NoError(t, s.Save(context.Background(), &session.Session{ID: "abc", Circuit: "or-gate", State: circuit.SwitchState{}}))

	assert.True(t, mr.Exists("test:abc"))
	assert.True(t, mr.Exists("test:index"))
	assert.False(t, mr.Exists(redisstore.DefaultPrefix+"abc"))
}

func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t, redisstore.WithTTL(time.Minute))
	require.NoError(t, s.Save(ctx, &session.Session{ID: "abc", Circuit: "or-gate"}))
	assert.Equal(t, time.Minute, mr.TTL(redisstore.DefaultPrefix+"abc"))

	mr.FastForward(2 * time.Minute)
	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisStore_Ping(t *testing.T) {
	s, _ := newStore(t)
	require.NoError(t, s.Ping(context.Background()))

	down := redisstore.New("127.0.0.1:1", "", 0)
	defer down.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, down.Ping(ctx))
}
