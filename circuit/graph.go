// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Traversal modes and the graph builder (Circuit + SwitchState + Mode → core.Graph).

package circuit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/circuitlab/bfs"
	"github.com/katalvlaran/circuitlab/core"
)

// Mode selects which edges are conductive in a built graph.
type Mode int

const (
	// ModeFull includes wires, closed switches and bulbs.
	ModeFull Mode = iota
	// ModeShort includes wires and closed switches only.
	ModeShort
)

// String returns "full" or "short".
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeShort:
		return "short"
	default:
		return "unknown"
	}
}

// ParseMode maps "full" or "short" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return ModeFull, nil
	case "short":
		return ModeShort, nil
	}

	return 0, fmt.Errorf("circuit: unknown mode %q", s)
}

// conducts reports whether e belongs to a graph built in mode m under state s.
func conducts(e Edge, s SwitchState, m Mode) bool {
	switch v := e.(type) {
	case Wire:
		return true
	case Switch:
		return s.Closed(v.ControlID())
	case Bulb:
		return m == ModeFull
	default:
		return false
	}
}

// BuildGraph produces the undirected adjacency structure of c for mode m.
// Every circuit node becomes a vertex, even when isolated, and conductive
// edges are inserted in declaration order. Missing switch entries are open.
//
// Complexity: O(V + E).
func BuildGraph(c *Circuit, s SwitchState, m Mode) *core.Graph {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, n := range c.nodes {
		mustGraph(g.AddVertex(n.ID))
	}
	for _, e := range c.edges {
		if !conducts(e, s, m) {
			continue
		}
		a, b := e.Ends()
		mustGraph(g.AddEdge(e.ID(), a, b))
	}

	return g
}

// buildGraphs returns the Full-mode graph and the Short-mode graph derived
// from it by dropping bulb edges.
func buildGraphs(c *Circuit, s SwitchState) (full, short *core.Graph) {
	full = BuildGraph(c, s, ModeFull)
	short = full.Clone()
	short.FilterEdges(func(e *core.Edge) bool {
		k, _ := c.kindOf(e.ID)
		return k != KindBulb
	})

	return full, short
}

// findPath is the Path Finder used by the evaluator: a fewest-edge path of
// edge IDs from start to goal, skipping blocked edges.
func findPath(g *core.Graph, start, goal string, blocked ...string) ([]string, bool) {
	path, found, err := bfs.ShortestPath(g, start, goal, bfs.WithBlockedEdges(blocked...))
	mustGraph(err)

	return path, found
}

// mustGraph panics on graph errors that a validated Circuit cannot produce.
func mustGraph(err error) {
	if err != nil {
		panic(fmt.Sprintf("circuit: graph invariant violated: %v", err))
	}
}
