package circuit

import "github.com/katalvlaran/circuitlab/core"

// resolver holds the per-evaluation graphs shared by all bulbs.
type resolver struct {
	c       *Circuit
	full    *core.Graph
	short   *core.Graph
	shorted bool
}

// resolve applies local short > global short > battery loop > unlit to b.
func (r resolver) resolve(b Bulb) BulbStatus {
	if path, ok := findPath(r.short, b.A, b.B); ok {
		return BulbStatus{ID: b.Name, Cause: CauseLocalShort, Path: path}
	}
	if r.shorted {
		return BulbStatus{ID: b.Name, Cause: CauseGlobalShort}
	}
	if path, ok := r.loop(b, b.A, b.B); ok {
		return BulbStatus{ID: b.Name, Lit: true, Cause: CauseLoop, Path: path}
	}
	if path, ok := r.loop(b, b.B, b.A); ok {
		return BulbStatus{ID: b.Name, Lit: true, Cause: CauseLoop, Path: path}
	}

	return BulbStatus{ID: b.Name, Cause: CauseOpen}
}

// loop looks for pos→in and out→neg on the Full graph with b itself blocked,
// and joins them through b.
func (r resolver) loop(b Bulb, in, out string) ([]string, bool) {
	pos, neg := r.c.Terminals()
	toIn, ok := findPath(r.full, pos, in, b.Name)
	if !ok {
		return nil, false
	}
	fromOut, ok := findPath(r.full, out, neg, b.Name)
	if !ok {
		return nil, false
	}

	path := make([]string, 0, len(toIn)+1+len(fromOut))
	path = append(path, toIn...)
	path = append(path, b.Name)
	path = append(path, fromOut...)

	return path, true
}
