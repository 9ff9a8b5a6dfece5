package session

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/circuitlab/circuit"
)

// ErrNotFound is returned when a session ID cannot be found in the store.
var ErrNotFound = errors.New("session: not found")

// ErrUnknownCircuit is returned (wrapped) by a Library that has no circuit
// under the requested name.
var ErrUnknownCircuit = errors.New("session: unknown circuit")

// Session is the persisted part of a lesson session.
type Session struct {
	ID      string              `json:"id"`
	Circuit string              `json:"circuit"`
	State   circuit.SwitchState `json:"state"`
	// Version counts state changes since Start.
	Version int       `json:"version"`
	Updated time.Time `json:"updated"`
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	out := *s
	out.State = s.State.Clone()

	return &out
}

// Store persists sessions.
type Store interface {
	// Save creates or replaces the session under s.ID.
	Save(ctx context.Context, s *Session) error
	// Load returns ErrNotFound when id does not exist.
	Load(ctx context.Context, id string) (*Session, error)
	// Delete removes id; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
	// List returns the stored session IDs.
	List(ctx context.Context) ([]string, error)
}

// Library resolves circuit names.
type Library interface {
	// Lookup returns the circuit and its reset state, or an error wrapping
	// ErrUnknownCircuit.
	Lookup(name string) (*circuit.Circuit, circuit.SwitchState, error)
}

// View is a session together with its freshly evaluated result.
type View struct {
	Session *Session       `json:"session"`
	Result  circuit.Result `json:"result"`
}
