// Package circuit models lesson circuits (wires, switches, bulbs and a battery)
// and evaluates them: which bulbs are lit, whether the battery is shorted, and
// which edges carry current for a given switch configuration.
//
// Model
//
//	Circuit      immutable nodes + edges + battery terminals (pos, neg)
//	Edge         sealed sum type: Wire | Switch | Bulb | Battery
//	SwitchState  caller-owned map switch ID → closed; missing means open
//	Result       derived; recomputed on every switch change
//
// Traversal modes
//
//	ModeFull   Wire, closed Switch, Bulb       (any complete current path)
//	ModeShort  Wire, closed Switch             (bulb-free bypass loops only)
//
// Battery edges are never traversable.
//
// Evaluation
//
// Evaluate is a pure function of (Circuit, SwitchState). For each bulb B(a,b):
//
//  1. local short:  Short-mode path a→b          ⇒ unlit, bypass carries current
//  2. global short: Short-mode path pos→neg      ⇒ every bulb unlit, short path is the only current
//  3. battery loop: Full-mode with B blocked,
//     pos→a + B + b→neg, else pos→b + B + a→neg  ⇒ lit, the loop carries current
//  4. otherwise unlit, no current
//
// Precedence is local short > global short > battery loop > unlit. The global
// short search runs once per evaluation.
//
// Errors
//
// Malformed circuits are rejected by New with sentinel errors (ErrEmptyID,
// ErrDuplicateNode, ErrDuplicateEdge, ErrUnknownNode, ErrInvalidTerminals,
// ErrInvalidEdge); MustNew panics on the same conditions for static fixtures.
// An unreachable bulb is a normal, unlit result and never an error.
package circuit
