// Package circuitlab is the evaluation engine behind a series of circuit
// lessons: a battery, wires, switches and bulbs joined at named nodes.
//
// For one switch configuration it answers three questions:
//
//	1. Which bulbs are lit, and why not the others?
//	2. Which wires, switches and bulbs carry current?
//	3. Is the battery shorted?
//
// Under the hood the work is split across these packages:
//
//	core/        - undirected multigraph with deterministic neighbour order
//	bfs/         - breadth-first shortest path with blocked edges
//	circuit/     - circuit model, graph builder, short detector, bulb resolver
//	builder/     - functional constructors and the lesson presets
//	circuitfile/ - YAML/JSON circuit files, JSON Schema validation, zstd
//	session/     - lesson sessions with memory, Redis and SQLite stores
//	cmd/         - the circuitlab CLI (eval, graph, export, serve …)
//
// Quick ASCII example (the NOT gate):
//
//	P ─w1─ A ─L1─ B ─w2─ N
//	       └──S1──┘
//
// With S1 open the bulb lies on the only battery loop and is lit. Closing S1
// joins P to N through wires and a switch alone: the battery is shorted, the
// bulb goes dark and only w1, S1, w2 carry current.
//
//	c := builder.NotGate()
//	res := circuit.Evaluate(c, circuit.SwitchState{"S1": true})
//	fmt.Println(res.Shorted, res.Current) // true [w1 S1 w2]
package circuitlab
