// SPDX-License-Identifier: MIT
// Package: circuitlab/builder
//
// impl_parts.go: component constructors (Nodes, Wire, Switch, Bulb, Battery,
// Series, Label).
//
// Contract:
//   • Edges are appended in call order; that order is the circuit's
//     declaration order and therefore the evaluator's tie-break order.
//   • Endpoint existence is checked by circuit.New, unless WithAutoNodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/circuit"
)

// Nodes declares the given IDs without layout hints.
func Nodes(ids ...string) Constructor {
	return func(d *Draft, _ builderConfig) error {
		for _, id := range ids {
			d.addNode(circuit.Node{ID: id})
		}
		return nil
	}
}

// Node declares one node with a layout hint.
func Node(id string, x, y float64) Constructor {
	return func(d *Draft, _ builderConfig) error {
		d.addNode(circuit.Node{ID: id, X: x, Y: y})
		return nil
	}
}

// Wire adds an always-conductive edge.
func Wire(id, a, b string) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		d.addEdge(circuit.Wire{Name: id, A: a, B: b}, cfg.autoNodes)
		return nil
	}
}

// Switch adds a switch edge controlled by its own ID.
func Switch(id, a, b string) Constructor {
	return GangedSwitch(id, a, b, "")
}

// GangedSwitch adds a switch edge controlled by control; several edges may
// share one control so that a single toggle moves them together.
func GangedSwitch(id, a, b, control string) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		d.addEdge(circuit.Switch{Name: id, A: a, B: b, Control: control}, cfg.autoNodes)
		return nil
	}
}

// Bulb adds a bulb edge.
func Bulb(id, a, b string) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		d.addEdge(circuit.Bulb{Name: id, A: a, B: b}, cfg.autoNodes)
		return nil
	}
}

// Battery adds the (non-traversable) battery edge between pos and neg.
func Battery(id, pos, neg string) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		d.addEdge(circuit.Battery{Name: id, Pos: pos, Neg: neg}, cfg.autoNodes)
		return nil
	}
}

// Label attaches a cosmetic label to an edge.
func Label(edgeID, text string) Constructor {
	return func(d *Draft, _ builderConfig) error {
		d.opts = append(d.opts, circuit.WithLabel(edgeID, text))
		return nil
	}
}

// Part describes one component of a Series.
type Part struct {
	Kind    circuit.Kind
	ID      string
	Control string
}

// W, S and L are Part shorthands for a wire, a switch and a bulb (lamp).
func W(id string) Part { return Part{Kind: circuit.KindWire, ID: id} }
func S(id string) Part { return Part{Kind: circuit.KindSwitch, ID: id} }
func L(id string) Part { return Part{Kind: circuit.KindBulb, ID: id} }

// Series places parts one after another between from and to. Junction nodes
// between consecutive parts are generated with cfg.idFn and declared
// automatically; from and to must be declared like any other endpoint.
//
// Errors:
//   - ErrConstructFailed: no parts, or a part of kind Battery/unknown.
func Series(from, to string, parts ...Part) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if len(parts) == 0 {
			return fmt.Errorf("Series(%s,%s): no parts: %w", from, to, ErrConstructFailed)
		}
		a := from
		for i, p := range parts {
			b := to
			if i < len(parts)-1 {
				b = d.nextJunction(cfg)
				d.addNode(circuit.Node{ID: b})
			}
			var e circuit.Edge
			switch p.Kind {
			case circuit.KindWire:
				e = circuit.Wire{Name: p.ID, A: a, B: b}
			case circuit.KindSwitch:
				e = circuit.Switch{Name: p.ID, A: a, B: b, Control: p.Control}
			case circuit.KindBulb:
				e = circuit.Bulb{Name: p.ID, A: a, B: b}
			default:
				return fmt.Errorf("Series(%s,%s): part %q of kind %s: %w", from, to, p.ID, p.Kind, ErrConstructFailed)
			}
			d.addEdge(e, cfg.autoNodes)
			a = b
		}
		return nil
	}
}
