package circuit

import "fmt"

// WarningKind classifies a topology warning.
type WarningKind string

const (
	// WarnIsolated marks a node with no wire, switch or bulb attached.
	WarnIsolated WarningKind = "isolated"
	// WarnDeadEnd marks a non-terminal node reached by a single edge. That
	// edge can never carry current whatever the switches do.
	WarnDeadEnd WarningKind = "dead-end"
)

// Warning is a topology finding that does not make the circuit invalid.
type Warning struct {
	Kind WarningKind `json:"kind"`
	Node string      `json:"node"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s node %s", w.Kind, w.Node)
}

// Lint inspects c with every switch closed and reports isolated nodes and
// dead ends, in lexicographic node order. The second result is the number
// of conductive edges in that graph.
//
// Complexity: O(V log V + E).
func Lint(c *Circuit) ([]Warning, int) {
	all := make(SwitchState)
	for _, id := range c.Switches() {
		all[id] = true
	}
	g := BuildGraph(c, all, ModeFull)

	var out []Warning
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		mustGraph(err)
		switch {
		case deg == 0:
			out = append(out, Warning{Kind: WarnIsolated, Node: id})
		case deg == 1 && id != c.pos && id != c.neg:
			out = append(out, Warning{Kind: WarnDeadEnd, Node: id})
		}
	}

	return out, g.EdgeCount()
}
