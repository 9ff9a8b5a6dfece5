package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/builder"
	"github.com/katalvlaran/circuitlab/circuit"
)

func edgeIDs(c *circuit.Circuit) []string {
	var out []string
	for _, e := range c.Edges() {
		out = append(out, e.ID())
	}

	return out
}

func nodeIDs(c *circuit.Circuit) []string {
	var out []string
	for _, n := range c.Nodes() {
		out = append(out, n.ID)
	}

	return out
}

func TestBuild_DeclaresTerminalsFirst(t *testing.T) {
	c, err := builder.Build("tiny", "P", "N", nil,
		builder.Battery("BAT", "P", "N"),
		builder.Nodes("A"),
		builder.Wire("w1", "P", "A"),
		builder.Bulb("L1", "A", "N"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"P", "N", "A"}, nodeIDs(c))
	assert.Equal(t, []string{"BAT", "w1", "L1"}, edgeIDs(c))
	pos, neg := c.Terminals()
	assert.Equal(t, "P", pos)
	assert.Equal(t, "N", neg)
}

func TestBuild_NilConstructor(t *testing.T) {
	_, err := builder.Build("x", "P", "N", nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_UnknownEndpointWithoutAutoNodes(t *testing.T) {
	_, err := builder.Build("x", "P", "N", nil, builder.Wire("w1", "P", "Q"))
	assert.ErrorIs(t, err, circuit.ErrUnknownNode)
}

func TestBuild_WithAutoNodes(t *testing.T) {
	c, err := builder.Build("x", "P", "N", []builder.BuilderOption{builder.WithAutoNodes()},
		builder.Wire("w1", "P", "Q"),
		builder.Bulb("L1", "Q", "N"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "N", "Q"}, nodeIDs(c))
}

func TestBuild_NodeLayoutHint(t *testing.T) {
	c, err := builder.Build("x", "P", "N", nil,
		builder.Node("P", 10, 20),
		builder.Nodes("P"), // zero hint keeps the earlier one
	)
	require.NoError(t, err)
	n, ok := c.Node("P")
	require.True(t, ok)
	assert.Equal(t, 10.0, n.X)
	assert.Equal(t, 20.0, n.Y)
}

func TestSeries_Junctions(t *testing.T) {
	c, err := builder.Build("chain", "P", "N", nil,
		builder.Series("P", "N", builder.S("S1"), builder.L("L1"), builder.W("w1")),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "N", "j1", "j2"}, nodeIDs(c))

	e, ok := c.Edge("L1")
	require.True(t, ok)
	a, b := e.Ends()
	assert.Equal(t, "j1", a)
	assert.Equal(t, "j2", b)
}

func TestSeries_SkipsTakenJunctionIDs(t *testing.T) {
	c, err := builder.Build("chain", "P", "N", nil,
		builder.Nodes("j1"),
		builder.Series("P", "N", builder.W("w1"), builder.L("L1")),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "N", "j1", "j2"}, nodeIDs(c))
	e, _ := c.Edge("w1")
	_, b := e.Ends()
	assert.Equal(t, "j2", b)
}

func TestSeries_CustomIDScheme(t *testing.T) {
	scheme := func(i int) string { return "node-" + string(rune('a'-1+i)) }
	c, err := builder.Build("chain", "P", "N", []builder.BuilderOption{builder.WithIDScheme(scheme)},
		builder.Series("P", "N", builder.W("w1"), builder.W("w2"), builder.L("L1")),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "N", "node-a", "node-b"}, nodeIDs(c))
}

func TestSeries_Errors(t *testing.T) {
	_, err := builder.Build("x", "P", "N", nil, builder.Series("P", "N"))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	bad := builder.Part{Kind: circuit.KindBattery, ID: "B2"}
	_, err = builder.Build("x", "P", "N", nil, builder.Series("P", "N", bad))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithIDScheme_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestGangedSwitch_SharesControl(t *testing.T) {
	c, err := builder.Build("ganged", "P", "N", nil,
		builder.Nodes("A"),
		builder.GangedSwitch("S1a", "P", "A", "S1"),
		builder.GangedSwitch("S1b", "A", "N", "S1"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, c.Switches())
}

func TestLabel(t *testing.T) {
	c, err := builder.Build("x", "P", "N", nil,
		builder.Wire("w1", "P", "N"),
		builder.Label("w1", "1 A"),
	)
	require.NoError(t, err)
	assert.Equal(t, "1 A", c.Label("w1"))

	_, err = builder.Build("x", "P", "N", nil, builder.Label("nope", "1 A"))
	assert.ErrorIs(t, err, circuit.ErrInvalidEdge)
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() {
		builder.MustBuild("x", "P", "P", nil)
	})
}

func TestCatalog(t *testing.T) {
	names := builder.Names()
	require.Len(t, names, len(builder.Catalog()))
	assert.Equal(t, "and-gate", names[0])

	seen := make(map[string]bool)
	for _, p := range builder.Catalog() {
		assert.False(t, seen[p.Name], "duplicate preset %s", p.Name)
		seen[p.Name] = true

		c, err := builder.Lookup(p.Name)
		require.NoError(t, err, p.Name)
		assert.Equal(t, p.Name, c.Name())
		assert.NotEmpty(t, c.Bulbs(), p.Name)

		e, ok := c.Edge("BAT")
		require.True(t, ok, p.Name)
		assert.Equal(t, circuit.KindBattery, e.Kind())
	}

	_, err := builder.Lookup("flux-capacitor")
	assert.ErrorIs(t, err, builder.ErrUnknownPreset)
}

func TestCatalog_IsACopy(t *testing.T) {
	cat := builder.Catalog()
	cat[0].Name = "mutated"
	assert.Equal(t, "and-gate", builder.Catalog()[0].Name)
}

func TestSplittingCurrent_Labels(t *testing.T) {
	c := builder.SplittingCurrent()
	assert.Equal(t, "1 A", c.Label("w1"))
	assert.Equal(t, "0.5 A", c.Label("L1"))
	assert.Equal(t, "0.5 A", c.Label("L2"))
	assert.Equal(t, "", c.Label("S1"))
}
