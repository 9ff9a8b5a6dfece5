// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/circuitlab/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by path reconstruction when dest was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterEdge can skip an edge by returning false; curr is the vertex
	// being expanded.
	FilterEdge func(curr string, e *core.Edge) bool

	// Blocked lists edge IDs that are never traversed.
	Blocked map[string]struct{}

	// Target, if non-empty, ends the search once this vertex is visited.
	Target string

	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth limit,
// no filtering, no blocked edges, no target and a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		FilterEdge: func(string, *core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(curr string, e *core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithBlockedEdges adds edge IDs that the search treats as absent.
// Repeated use accumulates.
func WithBlockedEdges(ids ...string) Option {
	return func(o *BFSOptions) {
		if len(ids) == 0 {
			return
		}
		if o.Blocked == nil {
			o.Blocked = make(map[string]struct{}, len(ids))
		}
		for _, id := range ids {
			o.Blocked[id] = struct{}{}
		}
	}
}

// WithTarget ends the search as soon as id has been visited.
func WithTarget(id string) Option {
	return func(o *BFSOptions) {
		o.Target = id
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex ID → distance (in edges) from the start.
//   - Parent: vertex ID → predecessor vertex in the BFS tree.
//   - ParentEdge: vertex ID → edge ID used to reach it.
type BFSResult struct {
	Start      string
	Order      []string
	Depth      map[string]int
	Parent     map[string]string
	ParentEdge map[string]string
}

// Reached reports whether dest was discovered by the search.
func (r *BFSResult) Reached(dest string) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo reconstructs the vertex path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(path)

	return path, nil
}

// EdgePathTo reconstructs the edge-ID path from the start vertex to dest by
// backtracking ParentEdge and reversing. The path to the start itself is empty.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) EdgePathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		path = append(path, r.ParentEdge[cur])
	}
	reverse(path)

	return path, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
