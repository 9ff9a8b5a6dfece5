// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-edge distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/circuitlab/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errTargetReached stops the main loop once the target has been visited.
var errTargetReached = errors.New("bfs: target reached")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:      startID,
			Order:      make([]string, 0, n),
			Depth:      make(map[string]int, n),
			Parent:     make(map[string]string, n),
			ParentEdge: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, nil)
	if err := w.loop(); err != nil && !errors.Is(err, errTargetReached) {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records how it was reached,
// and adds it to the queue. via is nil for the start vertex.
func (w *walker) enqueue(id string, d int, via *core.Edge) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if via != nil {
		w.res.Parent[id] = via.Other(id)
		w.res.ParentEdge[id] = via.ID
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, target or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.Target != "" && item.id == w.opts.Target {
			return errTargetReached
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks incident edges in insertion order, skips blocked and
// filtered edges, applies MaxDepth, and enqueues each unseen endpoint.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if _, blocked := w.opts.Blocked[e.ID]; blocked {
			continue
		}
		if !w.opts.FilterEdge(item.id, e) {
			continue
		}
		nbr := e.Other(item.id)
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, e)
		}
	}

	return nil
}
