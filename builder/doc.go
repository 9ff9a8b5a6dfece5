// Package builder assembles circuit.Circuit values from small, composable
// constructors and ships the preset lesson circuits.
//
// The package offers:
//
//   - Orchestration:
//     – Build(name, pos, neg, bopts, cons...): runs constructors over a Draft in
//     order and validates the result with circuit.New.
//     – MustBuild: same, panics on error (static presets only).
//   - Constructors:
//     – Nodes, Node:      declare nodes with layout hints.
//     – Wire, Switch, Bulb, Battery: single components.
//     – Series:           components in series between two nodes, with
//     generated junction nodes.
//     – Label:            cosmetic edge label (e.g. a hand-authored "0.5 A").
//   - Options:
//     – WithIDScheme:     junction node naming for Series.
//     – WithAutoNodes:    declare unknown endpoints implicitly.
//   - Presets and catalog:
//     – AndGate, OrGate, NotGate, GlobalShort, SeriesPair, SeriesBypass,
//     ChoosingBulbs, SplittingCurrent.
//     – Catalog(), Lookup(name), Names().
//
// Guarantees:
//
//   - Determinism: same constructors in the same order ⇒ identical circuits.
//   - Constructors return sentinel errors; only option constructors (WithX) and
//     MustBuild panic, on programmer error.
package builder
