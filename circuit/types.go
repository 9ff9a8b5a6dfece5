// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Kind and the sealed Edge sum type (Wire, Switch, Bulb, Battery).

package circuit

import (
	"fmt"
	"strings"
)

// Kind tags the variant of an Edge.
type Kind int

const (
	KindWire Kind = iota
	KindSwitch
	KindBulb
	KindBattery
)

// String returns the lower-case kind name used in circuit files.
func (k Kind) String() string {
	switch k {
	case KindWire:
		return "wire"
	case KindSwitch:
		return "switch"
	case KindBulb:
		return "bulb"
	case KindBattery:
		return "battery"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name (case-insensitive) back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wire":
		return KindWire, nil
	case "switch":
		return KindSwitch, nil
	case "bulb":
		return KindBulb, nil
	case "battery":
		return KindBattery, nil
	}

	return 0, fmt.Errorf("%w: unknown edge kind %q", ErrInvalidEdge, s)
}

// Node is a named point in the circuit. X and Y are layout hints for renderers.
type Node struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y  float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Edge is a circuit component joining two nodes.
// The set of implementations is closed: Wire, Switch, Bulb, Battery.
type Edge interface {
	// ID is the stable identifier used for current highlighting.
	ID() string
	// Kind reports the variant.
	Kind() Kind
	// Ends returns the two endpoint node IDs.
	Ends() (string, string)

	circuitEdge() // marker method restricting implementations to this package
}

// Wire is always conductive.
type Wire struct {
	Name string
	A, B string
}

func (w Wire) ID() string             { return w.Name }
func (Wire) Kind() Kind               { return KindWire }
func (w Wire) Ends() (string, string) { return w.A, w.B }
func (Wire) circuitEdge()             {}

// Switch conducts only while its control switch is closed.
// Several Switch edges may share one Control; an empty Control means Name.
type Switch struct {
	Name    string
	A, B    string
	Control string
}

func (s Switch) ID() string             { return s.Name }
func (Switch) Kind() Kind               { return KindSwitch }
func (s Switch) Ends() (string, string) { return s.A, s.B }
func (Switch) circuitEdge()             {}

// ControlID returns the switch identifier looked up in a SwitchState.
func (s Switch) ControlID() string {
	if s.Control != "" {
		return s.Control
	}

	return s.Name
}

// Bulb is traversable in ModeFull and excluded from ModeShort.
// The bulb ID doubles as the key in Result.Lit.
type Bulb struct {
	Name string
	A, B string
}

func (b Bulb) ID() string             { return b.Name }
func (Bulb) Kind() Kind               { return KindBulb }
func (b Bulb) Ends() (string, string) { return b.A, b.B }
func (Bulb) circuitEdge()             {}

// Battery marks the source terminals. It is never added to a traversal graph.
type Battery struct {
	Name     string
	Pos, Neg string
}

func (b Battery) ID() string             { return b.Name }
func (Battery) Kind() Kind               { return KindBattery }
func (b Battery) Ends() (string, string) { return b.Pos, b.Neg }
func (Battery) circuitEdge()             {}
