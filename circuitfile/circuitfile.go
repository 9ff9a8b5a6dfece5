// SPDX-License-Identifier: MIT
//
// File: circuitfile.go
// Role: Parse/Encode of circuit documents (YAML or JSON) into circuit.Circuit.
//
// Pipeline for Parse:
//  1. yaml.v3 decodes the bytes into generic values (JSON is valid YAML);
//  2. the generic tree is normalised to JSON types and validated against the
//     embedded JSON Schema;
//  3. mapstructure decodes the tree into Document, and each loose edge map
//     becomes a typed circuit.Edge variant;
//  4. circuit.New performs the structural checks (dangling endpoints etc.).

package circuitfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/circuitlab/circuit"
)

// ErrInvalidFile wraps every parse, schema or structural failure.
var ErrInvalidFile = errors.New("circuitfile: invalid circuit file")

// ErrTooLarge is returned by Load when a file, after decompression, exceeds
// MaxFileBytes.
var ErrTooLarge = errors.New("circuitfile: file too large")

// File is a parsed circuit document.
type File struct {
	Circuit *circuit.Circuit
	Title   string
	// Initial lists switches that start in a non-default position.
	Initial circuit.SwitchState
}

// State returns the reset configuration: every switch open, then Initial applied.
func (f *File) State() circuit.SwitchState {
	s := circuit.InitialState(f.Circuit)
	for id, closed := range f.Initial {
		s[id] = closed
	}

	return s
}

// Document is the on-disk shape of a circuit file.
type Document struct {
	Name      string          `json:"name" yaml:"name" mapstructure:"name"`
	Title     string          `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Terminals Terminals       `json:"terminals" yaml:"terminals" mapstructure:"terminals"`
	Nodes     []NodeDoc       `json:"nodes" yaml:"nodes" mapstructure:"nodes"`
	Edges     []EdgeDoc       `json:"edges" yaml:"edges" mapstructure:"edges"`
	Initial   map[string]bool `json:"initial,omitempty" yaml:"initial,omitempty" mapstructure:"initial"`
}

// Terminals names the battery nodes.
type Terminals struct {
	Pos string `json:"pos" yaml:"pos" mapstructure:"pos"`
	Neg string `json:"neg" yaml:"neg" mapstructure:"neg"`
}

// NodeDoc is one node entry.
type NodeDoc struct {
	ID string  `json:"id" yaml:"id" mapstructure:"id"`
	X  float64 `json:"x,omitempty" yaml:"x,omitempty" mapstructure:"x"`
	Y  float64 `json:"y,omitempty" yaml:"y,omitempty" mapstructure:"y"`
}

// EdgeDoc is one edge entry. Which endpoint fields apply depends on Kind:
// batteries use Pos/Neg, everything else A/B; only switches take Control.
type EdgeDoc struct {
	Kind    string `json:"kind" yaml:"kind" mapstructure:"kind"`
	ID      string `json:"id" yaml:"id" mapstructure:"id"`
	A       string `json:"a,omitempty" yaml:"a,omitempty" mapstructure:"a"`
	B       string `json:"b,omitempty" yaml:"b,omitempty" mapstructure:"b"`
	Pos     string `json:"pos,omitempty" yaml:"pos,omitempty" mapstructure:"pos"`
	Neg     string `json:"neg,omitempty" yaml:"neg,omitempty" mapstructure:"neg"`
	Control string `json:"control,omitempty" yaml:"control,omitempty" mapstructure:"control"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
}

func (e EdgeDoc) edge() (circuit.Edge, error) {
	k, err := circuit.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	switch k {
	case circuit.KindWire:
		return circuit.Wire{Name: e.ID, A: e.A, B: e.B}, nil
	case circuit.KindSwitch:
		return circuit.Switch{Name: e.ID, A: e.A, B: e.B, Control: e.Control}, nil
	case circuit.KindBulb:
		return circuit.Bulb{Name: e.ID, A: e.A, B: e.B}, nil
	default:
		return circuit.Battery{Name: e.ID, Pos: e.Pos, Neg: e.Neg}, nil
	}
}

// Parse decodes and validates a YAML or JSON circuit document.
func Parse(data []byte) (*File, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	tree, err := normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("circuitfile: schema: %w", err)
	}
	if err := sch.Validate(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("circuitfile: decoder: %w", err)
	}
	if err := dec.Decode(tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return doc.File()
}

// normalize turns a yaml.v3 value tree into plain JSON types (float64 numbers,
// map[string]any objects) as expected by the schema validator.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// File builds and validates the circuit described by d.
func (d Document) File() (*File, error) {
	nodes := make([]circuit.Node, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		nodes = append(nodes, circuit.Node{ID: n.ID, X: n.X, Y: n.Y})
	}

	edges := make([]circuit.Edge, 0, len(d.Edges))
	var opts []circuit.Option
	for i, ed := range d.Edges {
		e, err := ed.edge()
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d: %w", ErrInvalidFile, i, err)
		}
		edges = append(edges, e)
		if ed.Label != "" {
			opts = append(opts, circuit.WithLabel(ed.ID, ed.Label))
		}
	}

	c, err := circuit.New(d.Name, d.Terminals.Pos, d.Terminals.Neg, nodes, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	initial := make(circuit.SwitchState, len(d.Initial))
	for id, closed := range d.Initial {
		initial[id] = closed
	}
	if err := c.Check(initial); err != nil {
		return nil, fmt.Errorf("%w: initial: %w", ErrInvalidFile, err)
	}

	return &File{Circuit: c, Title: d.Title, Initial: initial}, nil
}

// Describe converts f back into its document form.
func Describe(f *File) Document {
	c := f.Circuit
	pos, neg := c.Terminals()
	doc := Document{
		Name:      c.Name(),
		Title:     f.Title,
		Terminals: Terminals{Pos: pos, Neg: neg},
	}
	for _, n := range c.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range c.Edges() {
		ed := EdgeDoc{Kind: e.Kind().String(), ID: e.ID(), Label: c.Label(e.ID())}
		switch v := e.(type) {
		case circuit.Battery:
			ed.Pos, ed.Neg = v.Pos, v.Neg
		case circuit.Switch:
			ed.A, ed.B, ed.Control = v.A, v.B, v.Control
		default:
			ed.A, ed.B = e.Ends()
		}
		doc.Edges = append(doc.Edges, ed)
	}
	if len(f.Initial) > 0 {
		doc.Initial = make(map[string]bool, len(f.Initial))
		for id, closed := range f.Initial {
			doc.Initial[id] = closed
		}
	}

	return doc
}

// Encode renders f as YAML.
func Encode(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Describe(f)); err != nil {
		return nil, fmt.Errorf("circuitfile: encode %s: %w", f.Circuit.Name(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("circuitfile: encode %s: %w", f.Circuit.Name(), err)
	}

	return buf.Bytes(), nil
}
