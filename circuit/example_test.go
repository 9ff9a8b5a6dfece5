package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/circuit"
)

// ExampleEvaluate wires a bulb with a switch across its terminals and toggles it.
func ExampleEvaluate() {
	c := circuit.MustNew("not-gate", "P", "N",
		[]circuit.Node{{ID: "P"}, {ID: "N"}, {ID: "A"}, {ID: "B"}},
		[]circuit.Edge{
			circuit.Battery{Name: "BAT", Pos: "P", Neg: "N"},
			circuit.Wire{Name: "w1", A: "P", B: "A"},
			circuit.Bulb{Name: "L1", A: "A", B: "B"},
			circuit.Switch{Name: "S1", A: "A", B: "B"},
			circuit.Wire{Name: "w2", A: "B", B: "N"},
		},
	)

	state := circuit.InitialState(c)
	for i := 0; i < 2; i++ {
		res := circuit.Evaluate(c, state)
		fmt.Println(state.ClosedIDs(), res.IsLit("L1"), res.Bulbs[0].Cause, res.Current)
		state = state.Toggle("S1")
	}
	// Output:
	// [] true loop [w1 L1 w2]
	// [S1] false local_short [w1 S1 w2]
}
