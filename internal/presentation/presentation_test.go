package presentation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuitlab/builder"
	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/internal/presentation"
)

func TestGenerateMermaid_Static(t *testing.T) {
	got := presentation.GenerateMermaid(builder.SplittingCurrent(), nil)

	for _, want := range []string{
		"graph LR\n",
		`P(("P +"))`,
		`N(("N -"))`,
		`X("X")`,
		`P === |"BAT"| N`,
		`P --- |"w1 · 1 A"| X`,
		`X -. "S1" .- j1`,
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "linkStyle")
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	c := builder.NotGate()

	state := circuit.SwitchState{}
	res := circuit.Evaluate(c, state)
	got := presentation.GenerateMermaid(c, &presentation.Overlay{State: state, Result: &res})
	assert.Contains(t, got, `A --- |"L1 (lit)"| B`)
	assert.Contains(t, got, `A -. "S1 (open)" .- B`)
	// edges: BAT(0) w1(1) L1(2) S1(3) w2(4)
	assert.Contains(t, got, "linkStyle 1,2,4 stroke:#f9a825")

	state = state.Toggle("S1")
	res = circuit.Evaluate(c, state)
	got = presentation.GenerateMermaid(c, &presentation.Overlay{State: state, Result: &res})
	assert.Contains(t, got, `"L1 (dark)"`)
	assert.Contains(t, got, "linkStyle 1,3,4 stroke:#d32f2f")
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	c := circuit.MustNew("ids", "bat+", "bat-", []circuit.Node{{ID: "bat+"}, {ID: "bat-"}, {ID: "node.a"}},
		[]circuit.Edge{circuit.Wire{Name: "w", A: "bat+", B: "node.a"}})
	got := presentation.GenerateMermaid(c, nil)
	assert.Contains(t, got, `bat_(("bat- -"))`)
	assert.Contains(t, got, `node_a("node.a")`)
}

func TestWriteSummary(t *testing.T) {
	c := builder.SeriesBypass()
	state := circuit.SwitchState{"S1": true}
	var buf bytes.Buffer
	require.NoError(t, presentation.WriteSummary(&buf, c, state, circuit.Evaluate(c, state)))

	out := buf.String()
	assert.Contains(t, out, "series-bypass")
	assert.Contains(t, out, "S1=closed")
	assert.Contains(t, out, "w1 S1 L2 w2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[len(lines)-2], "L1"))
	assert.Contains(t, lines[len(lines)-2], "local_short")
	assert.Contains(t, lines[len(lines)-1], "lit")
}
