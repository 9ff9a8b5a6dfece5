// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount/FilterEdges.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores an undirected edge with the caller-supplied id between from and to.
// Missing endpoints are created on the fly.
//
// Steps:
//  1. Validate IDs and loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject duplicate IDs and (if disabled) parallel edges.
//  4. Store the edge with the next insertion sequence number.
//  5. Link adjacency in both directions (once for a self-loop).
//
// Errors:
//   - ErrEmptyEdgeID, ErrEmptyVertexID, ErrLoopNotAllowed,
//     ErrDuplicateEdge, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to string) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("edge %q at %q: %w", id, from, ErrLoopNotAllowed)
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[id]; exists {
		return fmt.Errorf("edge %q: %w", id, ErrDuplicateEdge)
	}
	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return fmt.Errorf("edge %q between %q and %q: %w", id, from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextSeq++
	e := &Edge{ID: id, From: from, To: to, seq: g.nextSeq}
	g.edges[id] = e
	linkAdjacency(g, e)

	return nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph. Vertices are kept even when they become isolated.
//
// Complexity: O(E) scan + O(V+E) cleanup in the worst case.
// Concurrency: write lock on muEdgeAdj.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for id, e := range g.edges {
		if !pred(e) {
			unlinkAdjacency(g, e)
			delete(g.edges, id)
		}
	}
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
