// SPDX-License-Identifier: MIT
// Package: circuitlab/builder
//
// api.go: Draft, Constructor and the Build orchestrator.
//
// Design contract:
//   - One orchestrator: Build(name, pos, neg, bopts, cons...). Creates a Draft,
//     resolves cfg, runs cons in order, then validates via circuit.New.
//   - Determinism: same inputs/options and constructor order ⇒ identical circuits.

package builder

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/circuit"
)

// Draft accumulates nodes, edges and circuit options before validation.
type Draft struct {
	nodes    []circuit.Node
	edges    []circuit.Edge
	opts     []circuit.Option
	declared map[string]int // node ID → index in nodes
	junction int
}

func newDraft() *Draft {
	return &Draft{declared: make(map[string]int)}
}

// addNode declares n once. Re-declaring an existing ID only updates its
// layout hint, and only when the new one is non-zero.
func (d *Draft) addNode(n circuit.Node) {
	if i, ok := d.declared[n.ID]; ok {
		if n.X != 0 || n.Y != 0 {
			d.nodes[i] = n
		}
		return
	}
	d.declared[n.ID] = len(d.nodes)
	d.nodes = append(d.nodes, n)
}

// addEdge appends e, declaring its endpoints first when auto is set.
func (d *Draft) addEdge(e circuit.Edge, auto bool) {
	if auto {
		a, b := e.Ends()
		d.addNode(circuit.Node{ID: a})
		d.addNode(circuit.Node{ID: b})
	}
	d.edges = append(d.edges, e)
}

// nextJunction returns a fresh node ID from cfg.idFn not used so far.
func (d *Draft) nextJunction(cfg builderConfig) string {
	for {
		d.junction++
		id := cfg.idFn(d.junction)
		if _, taken := d.declared[id]; !taken {
			return id
		}
	}
}

// Constructor applies a deterministic mutation to a Draft.
// Constructors validate their own parameters and return sentinel errors.
type Constructor func(d *Draft, cfg builderConfig) error

// Build creates a Draft, applies all constructors in order and validates the
// result with circuit.New. Constructor errors are wrapped with "Build: %w".
// The battery terminals pos and neg are always declared as nodes.
func Build(name, pos, neg string, bopts []BuilderOption, cons ...Constructor) (*circuit.Circuit, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()
	if pos != "" {
		d.addNode(circuit.Node{ID: pos})
	}
	if neg != "" {
		d.addNode(circuit.Node{ID: neg})
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	c, err := circuit.New(name, pos, neg, d.nodes, d.edges, d.opts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return c, nil
}

// MustBuild is Build for static presets; it panics on error.
func MustBuild(name, pos, neg string, bopts []BuilderOption, cons ...Constructor) *circuit.Circuit {
	c, err := Build(name, pos, neg, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return c
}
