package bfs

import (
	"errors"

	"github.com/katalvlaran/circuitlab/core"
)

// ShortestPath returns the edge IDs of a fewest-edge path from start to goal.
//
// Contract:
//   - start == goal ⇒ empty path, found.
//   - goal absent from g or unreachable ⇒ nil, false, nil. This is a normal
//     outcome, not an error.
//   - Edges listed via WithBlockedEdges (or rejected by WithFilterEdge) are
//     treated as absent.
//   - Among equal-length paths the one found first in insertion order wins.
//
// Errors are reserved for programmer mistakes: ErrGraphNil,
// ErrStartVertexNotFound, ErrOptionViolation, or a context error.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, false, ErrStartVertexNotFound
	}
	if start == goal {
		return []string{}, true, nil
	}
	if !g.HasVertex(goal) {
		return nil, false, nil
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithTarget(goal))
	res, err := BFS(g, start, all...)
	if err != nil {
		return nil, false, err
	}

	path, err := res.EdgePathTo(goal)
	if errors.Is(err, ErrNoPath) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return path, true, nil
}
