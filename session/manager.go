package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/internal/logging"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Hooks observe manager events. Nil fields are skipped.
type Hooks struct {
	// OnEvaluate runs after every evaluation with its wall time.
	OnEvaluate func(circuitName string, res circuit.Result, took time.Duration)
	// OnStart runs after a new session is saved.
	OnStart func(s *Session)
	// OnEnd runs after a session is deleted.
	OnEnd func(id string)
}

// Manager serialises operations per session ID and evaluates the circuit on
// every change. Locks are reference counted and dropped when unused.
type Manager struct {
	store Store
	lib   Library

	mu    sync.Mutex
	locks map[string]*lockEntry

	logger *slog.Logger
	hooks  Hooks
	newID  func() string
	now    func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// WithHooks installs event observers.
func WithHooks(h Hooks) Option {
	return func(m *Manager) { m.hooks = h }
}

// WithIDGenerator replaces the random UUID session IDs.
func WithIDGenerator(fn func() string) Option {
	if fn == nil {
		panic("session: WithIDGenerator(nil)")
	}
	return func(m *Manager) { m.newID = fn }
}

// WithClock replaces time.Now for Session.Updated.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("session: WithClock(nil)")
	}
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager over store, resolving circuits through lib.
func NewManager(store Store, lib Library, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		lib:    lib,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[id]
	if !ok {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++

	return entry
}

func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[id]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// withLock runs fn while holding the lock for session id.
func (m *Manager) withLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

func (m *Manager) lookup(name string) (*circuit.Circuit, circuit.SwitchState, error) {
	c, initial, err := m.lib.Lookup(name)
	if err != nil {
		return nil, nil, fmt.Errorf("session: circuit %q: %w", name, err)
	}

	return c, initial, nil
}

func (m *Manager) evaluate(c *circuit.Circuit, s *Session) *View {
	start := time.Now()
	res := circuit.Evaluate(c, s.State)
	if m.hooks.OnEvaluate != nil {
		m.hooks.OnEvaluate(c.Name(), res, time.Since(start))
	}

	return &View{Session: s, Result: res}
}

// Start opens a session on circuit name in its reset state.
func (m *Manager) Start(ctx context.Context, name string) (*View, error) {
	c, initial, err := m.lookup(name)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:      m.newID(),
		Circuit: c.Name(),
		State:   initial.Clone(),
		Updated: m.now(),
	}
	err = m.withLock(ctx, s.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, s)
	})
	if err != nil {
		return nil, fmt.Errorf("session: start %s: %w", name, err)
	}
	m.logger.Debug("session started", "session_id", s.ID, "circuit", s.Circuit)
	if m.hooks.OnStart != nil {
		m.hooks.OnStart(s)
	}

	return m.evaluate(c, s), nil
}

// Get re-evaluates session id without changing it.
func (m *Manager) Get(ctx context.Context, id string) (*View, error) {
	var view *View
	err := m.withLock(ctx, id, func(ctx context.Context) error {
		s, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}
		c, _, err := m.lookup(s.Circuit)
		if err != nil {
			return err
		}
		view = m.evaluate(c, s)
		return nil
	})

	return view, err
}

// update loads session id, applies change and saves the result.
func (m *Manager) update(ctx context.Context, id string, change func(c *circuit.Circuit, initial circuit.SwitchState, s *Session) error) (*View, error) {
	var view *View
	err := m.withLock(ctx, id, func(ctx context.Context) error {
		s, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}
		c, initial, err := m.lookup(s.Circuit)
		if err != nil {
			return err
		}
		if err := change(c, initial, s); err != nil {
			return err
		}
		s.Version++
		s.Updated = m.now()
		if err := m.store.Save(ctx, s); err != nil {
			return fmt.Errorf("session: save %s: %w", id, err)
		}
		view = m.evaluate(c, s)
		return nil
	})

	return view, err
}

// Toggle flips one switch of session id.
//
// Errors: ErrNotFound, circuit.ErrUnknownSwitch.
func (m *Manager) Toggle(ctx context.Context, id, switchID string) (*View, error) {
	return m.update(ctx, id, func(c *circuit.Circuit, _ circuit.SwitchState, s *Session) error {
		if !c.HasSwitch(switchID) {
			return fmt.Errorf("session: toggle %q: %w", switchID, circuit.ErrUnknownSwitch)
		}
		s.State = s.State.Toggle(switchID)
		m.logger.Debug("switch toggled", "session_id", id, "switch", switchID, "closed", s.State.Closed(switchID))
		return nil
	})
}

// Set overwrites the positions listed in positions; other switches keep theirs.
//
// Errors: ErrNotFound, circuit.ErrUnknownSwitch.
func (m *Manager) Set(ctx context.Context, id string, positions circuit.SwitchState) (*View, error) {
	return m.update(ctx, id, func(c *circuit.Circuit, _ circuit.SwitchState, s *Session) error {
		if err := c.Check(positions); err != nil {
			return fmt.Errorf("session: set: %w", err)
		}
		next := s.State.Clone()
		for sw, closed := range positions {
			next[sw] = closed
		}
		s.State = next
		return nil
	})
}

// Reset restores the circuit's reset state, as when a lesson step restarts.
func (m *Manager) Reset(ctx context.Context, id string) (*View, error) {
	return m.update(ctx, id, func(_ *circuit.Circuit, initial circuit.SwitchState, s *Session) error {
		s.State = initial.Clone()
		return nil
	})
}

// End deletes session id. Ending an unknown session returns ErrNotFound.
func (m *Manager) End(ctx context.Context, id string) error {
	err := m.withLock(ctx, id, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, id); err != nil {
			return err
		}
		return m.store.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	m.logger.Debug("session ended", "session_id", id)
	if m.hooks.OnEnd != nil {
		m.hooks.OnEnd(id)
	}

	return nil
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// IsNotFound reports whether err means the session does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
