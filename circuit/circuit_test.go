package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/circuit"
)

func nodes(ids ...string) []circuit.Node {
	out := make([]circuit.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, circuit.Node{ID: id})
	}

	return out
}

func TestNew_Validation(t *testing.T) {
	wire := circuit.Wire{Name: "w1", A: "P", B: "N"}
	cases := []struct {
		name  string
		cname string
		pos   string
		neg   string
		nodes []circuit.Node
		edges []circuit.Edge
		opts  []circuit.Option
		want  error
	}{
		{"empty name", "", "P", "N", nodes("P", "N"), nil, nil, circuit.ErrEmptyID},
		{"empty node", "c", "P", "N", nodes("P", "N", ""), nil, nil, circuit.ErrEmptyID},
		{"duplicate node", "c", "P", "N", nodes("P", "N", "P"), nil, nil, circuit.ErrDuplicateNode},
		{"missing terminal", "c", "P", "", nodes("P", "N"), nil, nil, circuit.ErrInvalidTerminals},
		{"same terminals", "c", "P", "P", nodes("P", "N"), nil, nil, circuit.ErrInvalidTerminals},
		{"unknown terminal", "c", "P", "Q", nodes("P", "N"), nil, nil, circuit.ErrUnknownNode},
		{"nil edge", "c", "P", "N", nodes("P", "N"), []circuit.Edge{nil}, nil, circuit.ErrInvalidEdge},
		{"empty edge id", "c", "P", "N", nodes("P", "N"), []circuit.Edge{circuit.Wire{A: "P", B: "N"}}, nil, circuit.ErrEmptyID},
		{"duplicate edge", "c", "P", "N", nodes("P", "N"), []circuit.Edge{wire, wire}, nil, circuit.ErrDuplicateEdge},
		{"dangling endpoint", "c", "P", "N", nodes("P", "N"),
			[]circuit.Edge{circuit.Bulb{Name: "L1", A: "P", B: "X"}}, nil, circuit.ErrUnknownNode},
		{"reversed battery", "c", "P", "N", nodes("P", "N"),
			[]circuit.Edge{circuit.Battery{Name: "BAT", Pos: "N", Neg: "P"}}, nil, circuit.ErrInvalidTerminals},
		{"label for missing edge", "c", "P", "N", nodes("P", "N"), nil,
			[]circuit.Option{circuit.WithLabel("w9", "1 A")}, circuit.ErrInvalidEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := circuit.New(tc.cname, tc.pos, tc.neg, tc.nodes, tc.edges, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		circuit.MustNew("c", "P", "N", nodes("P"), nil)
	})
}

func TestCircuit_Accessors(t *testing.T) {
	c := circuit.MustNew("demo", "P", "N",
		[]circuit.Node{{ID: "P", X: 1, Y: 2}, {ID: "N"}, {ID: "A"}},
		[]circuit.Edge{
			circuit.Battery{Name: "BAT", Pos: "P", Neg: "N"},
			circuit.Switch{Name: "S1a", A: "P", B: "A", Control: "S1"},
			circuit.Switch{Name: "S1b", A: "P", B: "A", Control: "S1"},
			circuit.Switch{Name: "S2", A: "P", B: "A"},
			circuit.Bulb{Name: "L1", A: "A", B: "N"},
		},
		circuit.WithLabel("L1", "1 A"),
	)

	assert.Equal(t, "demo", c.Name())
	n, ok := c.Node("P")
	require.True(t, ok)
	assert.Equal(t, 1.0, n.X)
	_, ok = c.Node("Z")
	assert.False(t, ok)

	e, ok := c.Edge("S1b")
	require.True(t, ok)
	assert.Equal(t, circuit.KindSwitch, e.Kind())
	_, ok = c.Edge("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"S1", "S2"}, c.Switches())
	assert.True(t, c.HasSwitch("S1"))
	assert.False(t, c.HasSwitch("S1a"))
	assert.Equal(t, []circuit.Bulb{{Name: "L1", A: "A", B: "N"}}, c.Bulbs())
	assert.Equal(t, "1 A", c.Label("L1"))

	// returned slices are copies
	es := c.Edges()
	es[0] = nil
	assert.NotNil(t, c.Edges()[0])
}

func TestGangedSwitch_MovesTogether(t *testing.T) {
	c := circuit.MustNew("ganged", "P", "N", nodes("P", "N", "A"),
		[]circuit.Edge{
			circuit.Switch{Name: "S1a", A: "P", B: "A", Control: "S1"},
			circuit.Bulb{Name: "L1", A: "A", B: "N"},
			circuit.Switch{Name: "S1b", A: "A", B: "N", Control: "S1"},
		},
	)
	res := circuit.Evaluate(c, closed("S1"))
	assert.False(t, res.IsLit("L1"))
	assert.True(t, res.Shorted)
	assert.Equal(t, []string{"S1a", "S1b"}, res.Current)

	res = circuit.Evaluate(c, closed())
	assert.Zero(t, res.LitCount())
	assert.False(t, res.Shorted)
}

func TestKind(t *testing.T) {
	for _, k := range []circuit.Kind{circuit.KindWire, circuit.KindSwitch, circuit.KindBulb, circuit.KindBattery} {
		got, err := circuit.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := circuit.ParseKind(" Bulb ")
	require.NoError(t, err)
	assert.Equal(t, circuit.KindBulb, got)

	_, err = circuit.ParseKind("resistor")
	assert.ErrorIs(t, err, circuit.ErrInvalidEdge)
}

func TestSwitchState(t *testing.T) {
	var nilState circuit.SwitchState
	assert.False(t, nilState.Closed("S1"))

	s := circuit.SwitchState{"S1": false}
	t1 := s.Toggle("S1")
	assert.True(t, t1.Closed("S1"))
	assert.False(t, s.Closed("S1"), "Toggle returns a copy")

	t2 := t1.With("S2", true).Toggle("S1")
	assert.Equal(t, []string{"S2"}, t2.ClosedIDs())
	assert.Equal(t, []string{"S1"}, t1.ClosedIDs())

	c := t2.Clone()
	c["S3"] = true
	assert.False(t, t2.Closed("S3"))
}

func TestInitialState(t *testing.T) {
	c := circuit.MustNew("c", "P", "N", nodes("P", "N", "A"),
		[]circuit.Edge{
			circuit.Switch{Name: "S2", A: "P", B: "A"},
			circuit.Switch{Name: "S1", A: "A", B: "N"},
		},
	)
	s := circuit.InitialState(c)
	assert.Equal(t, circuit.SwitchState{"S1": false, "S2": false}, s)
	assert.Empty(t, s.ClosedIDs())
}
