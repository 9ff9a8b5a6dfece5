// Package circuitfile reads and writes circuit documents.
//
// A document is YAML (or JSON) of the form:
//
//	name: not-gate
//	title: "Logic Gate: NOT"
//	terminals: {pos: P, neg: N}
//	nodes:
//	  - {id: P, x: 0, y: 0}
//	  - {id: N, x: 0, y: 100}
//	  - {id: A}
//	  - {id: B}
//	edges:
//	  - {kind: battery, id: BAT, pos: P, neg: N}
//	  - {kind: wire, id: w1, a: P, b: A}
//	  - {kind: bulb, id: L1, a: A, b: B, label: "0.5 A"}
//	  - {kind: switch, id: S1, a: A, b: B}
//	  - {kind: wire, id: w2, a: B, b: N}
//	initial: {S1: false}
//
// Documents are validated against an embedded JSON Schema (see Schema) before
// they are turned into a circuit.Circuit. Files ending in ".zst" are
// zstd-compressed.
package circuitfile
