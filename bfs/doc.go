// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edge distances, parent links (vertex and edge) and visit order, and a
// ShortestPath helper that reconstructs the edge-ID path between two vertices.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFSResult carries Order, Depth, Parent and ParentEdge.
//   - EdgePathTo backtracks ParentEdge from the destination to the start and
//     reverses, yielding the edge IDs a caller highlights as current.
//   - Individual edges can be skipped entirely (WithBlockedEdges, WithFilterEdge),
//     as if they were absent from the graph.
//   - WithTarget stops the search as soon as the goal vertex is dequeued.
//
// Determinism
//
//	core.Neighbors returns edges in insertion order and BFS enqueues neighbors in
//	that order, so among several shortest paths the one built from the
//	earliest-declared edges wins, reproducibly.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	path, found, err := bfs.ShortestPath(g, "pos", "neg", bfs.WithBlockedEdges("bulb1"))
//	if err != nil {
//		// ErrGraphNil or ErrStartVertexNotFound: programmer error
//	}
//	if !found {
//		// goal unreachable; a normal outcome
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithFilterEdge(fn):      skip edges for which fn(curr, edge)==false.
//   - WithBlockedEdges(ids...): skip the listed edge IDs.
//   - WithTarget(id):          stop once id is reached.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - ErrNoPath               from EdgePathTo/PathTo when dest was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
