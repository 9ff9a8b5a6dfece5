// Package core provides the thread-safe, in-memory undirected multigraph that
// every circuit traversal in circuitlab runs on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; each edge is mirrored in adjacencyList[to][from].
//   - Caller-supplied, stable edge IDs (circuit wire/switch/bulb names) so that
//     a path reconstructed by a search maps 1:1 onto highlighted circuit parts.
//   - Parallel edges (WithMultiEdges) for a switch wired across a bulb.
//   - Self-loops (WithLoops) for degenerate components whose ends coincide.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices() is sorted lexicographically. Edges() and Neighbors() are sorted
//	by insertion sequence, so a breadth-first search over the graph expands
//	neighbors in the order the circuit declared its edges. Ties between equal
//	length paths are therefore broken reproducibly.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1)
//	HasVertex(id string) bool            // O(1)
//
//	// Edge lifecycle
//	AddEdge(id, from, to string) error   // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // O(d log d), insertion order
//	Vertices() []string                   // O(V log V)
//	Edges() []*Edge                       // O(E log E)
//	EdgeCount() int                       // O(1)
//	Degree(id string) (int, error)        // O(d)
//
//	// Maintenance
//	FilterEdges(pred func(*Edge) bool)   // O(E)
//	Clone() *Graph                       // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID, ErrEmptyEdgeID, ErrVertexNotFound, ErrDuplicateEdge,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
