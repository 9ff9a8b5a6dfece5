// SPDX-License-Identifier: MIT
//
// File: circuit.go
// Role: Immutable Circuit, construction-time validation and read-only accessors.

package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction. All are configuration errors:
// a circuit that fails validation must not be evaluated.
var (
	// ErrEmptyID indicates a node, edge or circuit with an empty identifier.
	ErrEmptyID = errors.New("circuit: empty identifier")

	// ErrDuplicateNode indicates two nodes share an ID.
	ErrDuplicateNode = errors.New("circuit: duplicate node")

	// ErrDuplicateEdge indicates two edges share an ID.
	ErrDuplicateEdge = errors.New("circuit: duplicate edge")

	// ErrUnknownNode indicates an edge or terminal references a node not in the node set.
	ErrUnknownNode = errors.New("circuit: unknown node")

	// ErrInvalidTerminals indicates missing, identical or inconsistent battery terminals.
	ErrInvalidTerminals = errors.New("circuit: invalid battery terminals")

	// ErrInvalidEdge indicates a nil edge, an unknown kind, or a label for a missing edge.
	ErrInvalidEdge = errors.New("circuit: invalid edge")

	// ErrUnknownSwitch indicates a switch state entry that no Switch edge controls.
	ErrUnknownSwitch = errors.New("circuit: unknown switch")
)

// Circuit is a fixed set of nodes and edges with designated battery terminals.
// A Circuit is immutable once constructed; only SwitchState varies.
type Circuit struct {
	name   string
	pos    string
	neg    string
	nodes  []Node
	edges  []Edge
	nodeAt map[string]int
	edgeAt map[string]int
	labels map[string]string
}

// Option configures optional, presentation-only data on a Circuit.
type Option func(*Circuit)

// WithLabel attaches a cosmetic label to an edge (for example a hand-authored
// current magnitude such as "0.5 A"). Labels never influence evaluation.
func WithLabel(edgeID, label string) Option {
	return func(c *Circuit) {
		if c.labels == nil {
			c.labels = make(map[string]string)
		}
		c.labels[edgeID] = label
	}
}

// New validates and builds a Circuit. pos and neg name the battery terminals.
//
// Validation (first failure wins, wrapped with context):
//   - name, node IDs and edge IDs are non-empty (ErrEmptyID);
//   - node IDs and edge IDs are unique (ErrDuplicateNode, ErrDuplicateEdge);
//   - every edge endpoint exists (ErrUnknownNode);
//   - pos and neg exist and differ; a Battery edge must join exactly pos and neg
//     (ErrInvalidTerminals);
//   - edges are non-nil and labels refer to existing edges (ErrInvalidEdge).
//
// Complexity: O(V + E).
func New(name, pos, neg string, nodes []Node, edges []Edge, opts ...Option) (*Circuit, error) {
	if name == "" {
		return nil, fmt.Errorf("circuit name: %w", ErrEmptyID)
	}
	c := &Circuit{
		name:   name,
		pos:    pos,
		neg:    neg,
		nodes:  make([]Node, 0, len(nodes)),
		edges:  make([]Edge, 0, len(edges)),
		nodeAt: make(map[string]int, len(nodes)),
		edgeAt: make(map[string]int, len(edges)),
	}

	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%s: node: %w", name, ErrEmptyID)
		}
		if _, dup := c.nodeAt[n.ID]; dup {
			return nil, fmt.Errorf("%s: node %q: %w", name, n.ID, ErrDuplicateNode)
		}
		c.nodeAt[n.ID] = len(c.nodes)
		c.nodes = append(c.nodes, n)
	}

	if err := c.checkTerminals(); err != nil {
		return nil, err
	}

	for i, e := range edges {
		if err := c.checkEdge(i, e); err != nil {
			return nil, err
		}
		c.edgeAt[e.ID()] = len(c.edges)
		c.edges = append(c.edges, e)
	}

	for _, opt := range opts {
		opt(c)
	}
	for id := range c.labels {
		if _, ok := c.edgeAt[id]; !ok {
			return nil, fmt.Errorf("%s: label for edge %q: %w", name, id, ErrInvalidEdge)
		}
	}

	return c, nil
}

// MustNew is New for static, hand-written fixtures: it panics on any
// configuration error.
func MustNew(name, pos, neg string, nodes []Node, edges []Edge, opts ...Option) *Circuit {
	c, err := New(name, pos, neg, nodes, edges, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

func (c *Circuit) checkTerminals() error {
	if c.pos == "" || c.neg == "" {
		return fmt.Errorf("%s: %w: terminal is empty", c.name, ErrInvalidTerminals)
	}
	if c.pos == c.neg {
		return fmt.Errorf("%s: %w: pos and neg are both %q", c.name, ErrInvalidTerminals, c.pos)
	}
	for _, t := range []string{c.pos, c.neg} {
		if _, ok := c.nodeAt[t]; !ok {
			return fmt.Errorf("%s: terminal %q: %w", c.name, t, ErrUnknownNode)
		}
	}

	return nil
}

func (c *Circuit) checkEdge(i int, e Edge) error {
	if e == nil {
		return fmt.Errorf("%s: edge #%d is nil: %w", c.name, i, ErrInvalidEdge)
	}
	id := e.ID()
	if id == "" {
		return fmt.Errorf("%s: edge #%d (%s): %w", c.name, i, e.Kind(), ErrEmptyID)
	}
	if _, dup := c.edgeAt[id]; dup {
		return fmt.Errorf("%s: edge %q: %w", c.name, id, ErrDuplicateEdge)
	}
	a, b := e.Ends()
	for _, end := range []string{a, b} {
		if _, ok := c.nodeAt[end]; !ok {
			return fmt.Errorf("%s: %s %q endpoint %q: %w", c.name, e.Kind(), id, end, ErrUnknownNode)
		}
	}
	if bat, ok := e.(Battery); ok {
		if !(bat.Pos == c.pos && bat.Neg == c.neg) {
			return fmt.Errorf("%s: battery %q joins %q/%q, circuit terminals are %q/%q: %w",
				c.name, id, bat.Pos, bat.Neg, c.pos, c.neg, ErrInvalidTerminals)
		}
	}

	return nil
}

// Name returns the circuit identifier.
func (c *Circuit) Name() string { return c.name }

// Terminals returns the battery's positive and negative node IDs.
func (c *Circuit) Terminals() (pos, neg string) { return c.pos, c.neg }

// Nodes returns a copy of the node list in declaration order.
func (c *Circuit) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	copy(out, c.nodes)

	return out
}

// Node looks up a node by ID.
func (c *Circuit) Node(id string) (Node, bool) {
	i, ok := c.nodeAt[id]
	if !ok {
		return Node{}, false
	}

	return c.nodes[i], true
}

// Edges returns a copy of the edge list in declaration order.
func (c *Circuit) Edges() []Edge {
	out := make([]Edge, len(c.edges))
	copy(out, c.edges)

	return out
}

// Edge looks up an edge by ID.
func (c *Circuit) Edge(id string) (Edge, bool) {
	i, ok := c.edgeAt[id]
	if !ok {
		return nil, false
	}

	return c.edges[i], true
}

// Bulbs returns the bulb edges in declaration order.
func (c *Circuit) Bulbs() []Bulb {
	var out []Bulb
	for _, e := range c.edges {
		if b, ok := e.(Bulb); ok {
			out = append(out, b)
		}
	}

	return out
}

// Switches returns the distinct switch control IDs in first-declared order.
func (c *Circuit) Switches() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.edges {
		s, ok := e.(Switch)
		if !ok {
			continue
		}
		id := s.ControlID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// HasSwitch reports whether some Switch edge is controlled by id.
func (c *Circuit) HasSwitch(id string) bool {
	for _, e := range c.edges {
		if s, ok := e.(Switch); ok && s.ControlID() == id {
			return true
		}
	}

	return false
}

// Label returns the cosmetic label of an edge, or "" if none.
func (c *Circuit) Label(edgeID string) string { return c.labels[edgeID] }

// kindOf returns the kind of edge id; ok is false for unknown IDs.
func (c *Circuit) kindOf(id string) (Kind, bool) {
	e, ok := c.Edge(id)
	if !ok {
		return 0, false
	}

	return e.Kind(), true
}
