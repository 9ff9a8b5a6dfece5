package core_test

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/core"
)

// ExampleGraph_Neighbors shows that a switch wired across a bulb is kept as a
// parallel edge and that neighbors come back in insertion order.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithMultiEdges())
	_ = g.AddEdge("bulb", "L", "R")
	_ = g.AddEdge("bypass", "L", "R")
	_ = g.AddEdge("feed", "P", "L")

	nbrs, _ := g.Neighbors("L")
	for _, e := range nbrs {
		fmt.Println(e.ID, "→", e.Other("L"))
	}
	// Output:
	// bulb → R
	// bypass → R
	// feed → P
}
