package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/bfs"
	"github.com/katalvlaran/circuitlab/core"
)

// ExampleShortestPath finds the fewest-edge route around a loop while one
// edge is blocked.
//
//	P──w1──X──w2──N
//	│             │
//	└──w3──Y──w4──┘
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("w1", "P", "X")
	_ = g.AddEdge("w2", "X", "N")
	_ = g.AddEdge("w3", "P", "Y")
	_ = g.AddEdge("w4", "Y", "N")

	path, found, _ := bfs.ShortestPath(g, "P", "N")
	fmt.Println(found, path)

	path, found, _ = bfs.ShortestPath(g, "P", "N", bfs.WithBlockedEdges("w2"))
	fmt.Println(found, path)
	// Output:
	// true [w1 w2]
	// true [w3 w4]
}
