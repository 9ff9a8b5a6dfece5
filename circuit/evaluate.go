// SPDX-License-Identifier: MIT
//
// File: evaluate.go
// Role: Short-circuit detector, bulb illumination resolver and Result.

package circuit

import (
	"errors"
	"fmt"
)

// ErrNotSingleBulb is returned by Result.SingleLit when the circuit does not
// have exactly one bulb.
var ErrNotSingleBulb = errors.New("circuit: result does not describe exactly one bulb")

// Cause explains a bulb's status.
type Cause int

const (
	// CauseOpen: no battery loop reaches the bulb.
	CauseOpen Cause = iota
	// CauseLoop: the bulb sits on a battery loop and is lit.
	CauseLoop
	// CauseLocalShort: a bulb-free path joins the bulb's own terminals.
	CauseLocalShort
	// CauseGlobalShort: the battery is shorted; every bulb is dark.
	CauseGlobalShort
)

// String returns a short machine-friendly name.
func (c Cause) String() string {
	switch c {
	case CauseOpen:
		return "open"
	case CauseLoop:
		return "loop"
	case CauseLocalShort:
		return "local_short"
	case CauseGlobalShort:
		return "global_short"
	default:
		return "unknown"
	}
}

// MarshalText encodes the cause by name.
func (c Cause) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a cause name written by MarshalText.
func (c *Cause) UnmarshalText(b []byte) error {
	for _, v := range []Cause{CauseOpen, CauseLoop, CauseLocalShort, CauseGlobalShort} {
		if v.String() == string(b) {
			*c = v
			return nil
		}
	}

	return fmt.Errorf("circuit: unknown cause %q", b)
}

// BulbStatus is the resolved state of one bulb.
type BulbStatus struct {
	ID    string   `json:"id"`
	Lit   bool     `json:"lit"`
	Cause Cause    `json:"cause"`
	Path  []string `json:"path,omitempty"`
}

// Result is the derived state of a circuit under one switch configuration.
type Result struct {
	// Lit maps every bulb ID to its lit status.
	Lit map[string]bool `json:"lit"`
	// Current lists the current-carrying edge IDs in circuit declaration order.
	Current []string `json:"current"`
	// Shorted is true when a bulb-free path joins the battery terminals.
	Shorted bool `json:"shorted"`
	// ShortPath is that path, when Shorted.
	ShortPath []string `json:"short_path,omitempty"`
	// Bulbs details each bulb in declaration order.
	Bulbs []BulbStatus `json:"bulbs"`
}

// IsLit reports whether bulb id is lit. Unknown IDs are dark.
func (r Result) IsLit(id string) bool { return r.Lit[id] }

// Carries reports whether edge id carries current.
func (r Result) Carries(id string) bool {
	for _, e := range r.Current {
		if e == id {
			return true
		}
	}

	return false
}

// LitCount returns the number of lit bulbs.
func (r Result) LitCount() int {
	n := 0
	for _, lit := range r.Lit {
		if lit {
			n++
		}
	}

	return n
}

// SingleLit is the lit flag of a one-bulb circuit.
func (r Result) SingleLit() (bool, error) {
	if len(r.Bulbs) != 1 {
		return false, fmt.Errorf("%w: %d bulbs", ErrNotSingleBulb, len(r.Bulbs))
	}

	return r.Bulbs[0].Lit, nil
}

// DetectShort reports whether the battery terminals are joined by a path of
// wires and closed switches only, and returns that path.
func DetectShort(c *Circuit, s SwitchState) ([]string, bool) {
	short := BuildGraph(c, s, ModeShort)
	return findPath(short, c.pos, c.neg)
}

// Evaluate resolves every bulb of c under s. It is pure: the same inputs
// always give the same Result, and neither input is modified.
func Evaluate(c *Circuit, s SwitchState) Result {
	full, short := buildGraphs(c, s)

	res := Result{Lit: make(map[string]bool)}
	carrying := make(map[string]struct{})
	mark := func(ids []string) {
		for _, id := range ids {
			carrying[id] = struct{}{}
		}
	}

	shortPath, shorted := findPath(short, c.pos, c.neg)
	if shorted {
		res.Shorted = true
		res.ShortPath = shortPath
		mark(shortPath)
	}

	r := resolver{c: c, full: full, short: short, shorted: shorted}
	for _, b := range c.Bulbs() {
		st := r.resolve(b)
		res.Lit[b.Name] = st.Lit
		res.Bulbs = append(res.Bulbs, st)
		if !shorted {
			mark(st.Path)
		}
	}

	res.Current = []string{}
	for _, e := range c.edges {
		if _, ok := carrying[e.ID()]; ok {
			res.Current = append(res.Current, e.ID())
		}
	}

	return res
}
