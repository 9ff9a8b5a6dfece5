// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over edge sequence numbers, so Edges()/Neighbors() order is preserved.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// cloneEmpty returns a new Graph with the same flags and vertices but no edges.
// Vertex Metadata maps are shared, not copied.
func (g *Graph) cloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := make([]GraphOption, 0, 2)
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	clone.nextSeq = g.nextSeq
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of vertices, edges and adjacency.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	clone := g.cloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for id, e := range g.edges {
		ne := &Edge{ID: id, From: e.From, To: e.To, seq: e.seq}
		clone.edges[id] = ne
		linkAdjacency(clone, ne)
	}

	return clone
}
