// Package library is the named set of circuits a process serves: the builder
// presets plus any circuit files loaded from disk.
package library

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/circuitlab/builder"
	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/circuitfile"
	"github.com/katalvlaran/circuitlab/session"
)

// SourcePreset marks entries built from builder presets.
const SourcePreset = "preset"

// Entry is one named circuit.
type Entry struct {
	Name   string            `json:"name"`
	Title  string            `json:"title,omitempty"`
	Lesson string            `json:"lesson,omitempty"`
	Source string            `json:"source"`
	File   *circuitfile.File `json:"-"`
}

// Library manages the available circuits.
type Library struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

// New creates an empty library.
func New() *Library {
	return &Library{entries: make(map[string]Entry)}
}

// Default returns a library seeded with every builder preset.
func Default() *Library {
	l := New()
	for _, p := range builder.Catalog() {
		l.add(Entry{
			Name:   p.Name,
			Title:  p.Title,
			Lesson: p.Lesson,
			Source: SourcePreset,
			File:   &circuitfile.File{Circuit: p.New(), Title: p.Title},
		})
	}

	return l
}

func (l *Library) add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.entries[e.Name]; !exists {
		l.order = append(l.order, e.Name)
	}
	l.entries[e.Name] = e
}

// Add registers f under its circuit name. An existing entry with the same
// name is replaced but keeps its position.
func (l *Library) Add(f *circuitfile.File, source string) {
	l.add(Entry{
		Name:   f.Circuit.Name(),
		Title:  f.Title,
		Source: source,
		File:   f,
	})
}

// AddDir loads every circuit file in dir and returns how many were added.
func (l *Library) AddDir(dir string) (int, error) {
	files, err := circuitfile.LoadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("library: %w", err)
	}
	for _, f := range files {
		l.Add(f, dir)
	}

	return len(files), nil
}

// Entry returns the entry called name.
func (l *Library) Entry(name string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.entries[name]

	return e, ok
}

// Entries returns all entries in registration order.
func (l *Library) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Entry, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.entries[name])
	}

	return out
}

// Lookup implements session.Library.
func (l *Library) Lookup(name string) (*circuit.Circuit, circuit.SwitchState, error) {
	e, ok := l.Entry(name)
	if !ok {
		return nil, nil, fmt.Errorf("library: %q: %w", name, session.ErrUnknownCircuit)
	}

	return e.File.Circuit, e.File.State(), nil
}

var _ session.Library = (*Library)(nil)
