// SPDX-License-Identifier: MIT
// Package: circuitlab/builder
//
// impl_presets.go: the lesson circuits.
//
// Every preset uses battery terminals "P" (positive) and "N" (negative) and
// declares a Battery edge "BAT" for renderers. Switches start open.

package builder

import "github.com/katalvlaran/circuitlab/circuit"

const (
	presetPos     = "P"
	presetNeg     = "N"
	presetBattery = "BAT"
)

// preset builds a static lesson circuit around the standard battery.
func preset(name string, cons ...Constructor) *circuit.Circuit {
	all := append([]Constructor{Battery(presetBattery, presetPos, presetNeg)}, cons...)
	return MustBuild(name, presetPos, presetNeg, nil, all...)
}

// AndGate: two switches in series feeding one bulb.
//
//	P ─S1─ j1 ─S2─ j2 ─L1─ N
func AndGate() *circuit.Circuit {
	return preset("and-gate",
		Series(presetPos, presetNeg, S("S1"), S("S2"), L("L1")),
	)
}

// OrGate: two switches in parallel branches feeding one bulb.
//
//	P ─w1─ A ─S1─ j1 ─w3─ B ─L1─ C ─w2─ N
//	       └──S2─ j2 ─w4──┘
func OrGate() *circuit.Circuit {
	return preset("or-gate",
		Nodes("A", "B", "C"),
		Wire("w1", presetPos, "A"),
		Series("A", "B", S("S1"), W("w3")),
		Series("A", "B", S("S2"), W("w4")),
		Bulb("L1", "B", "C"),
		Wire("w2", "C", presetNeg),
	)
}

// NotGate: a switch wired directly across the bulb's own terminals.
// Closing it bypasses the bulb.
//
//	P ─w1─ A ─L1─ B ─w2─ N
//	       └──S1──┘
func NotGate() *circuit.Circuit {
	return preset("not-gate",
		Nodes("A", "B"),
		Wire("w1", presetPos, "A"),
		Bulb("L1", "A", "B"),
		Switch("S1", "A", "B"),
		Wire("w2", "B", presetNeg),
	)
}

// GlobalShort: a bare wire joins the battery terminals next to a bulb loop.
//
//	P ─────w0───── N
//	P ─w1─ A ─L1─ B ─w2─ N
func GlobalShort() *circuit.Circuit {
	return preset("global-short",
		Nodes("A", "B"),
		Wire("w0", presetPos, presetNeg),
		Wire("w1", presetPos, "A"),
		Bulb("L1", "A", "B"),
		Wire("w2", "B", presetNeg),
	)
}

// SeriesPair: one switch and two bulbs in series.
//
//	P ─S1─ j1 ─L1─ j2 ─L2─ j3 ─w1─ N
func SeriesPair() *circuit.Circuit {
	return preset("series-pair",
		Series(presetPos, presetNeg, S("S1"), L("L1"), L("L2"), W("w1")),
	)
}

// SeriesBypass: two bulbs in series; a switch bypasses only the first one,
// which stays dark while the second keeps glowing.
//
//	P ─w1─ A ─L1─ B ─L2─ C ─w2─ N
//	       └──S1──┘
func SeriesBypass() *circuit.Circuit {
	return preset("series-bypass",
		Nodes("A", "B", "C"),
		Wire("w1", presetPos, "A"),
		Switch("S1", "A", "B"),
		Bulb("L1", "A", "B"),
		Bulb("L2", "B", "C"),
		Wire("w2", "C", presetNeg),
	)
}

// ChoosingBulbs: a master switch M feeds two switched bulb branches; S3 is a
// tempting shortcut that bypasses both bulbs.
//
//	P ─M─ X ─S1─ j1 ─L1─ Z ─w1─ N
//	        ├S2─ j2 ─L2─┤
//	        └────S3─────┘
func ChoosingBulbs() *circuit.Circuit {
	return preset("choosing-bulbs",
		Nodes("X", "Z"),
		Switch("M", presetPos, "X"),
		Series("X", "Z", S("S1"), L("L1")),
		Series("X", "Z", S("S2"), L("L2")),
		Switch("S3", "X", "Z"),
		Wire("w1", "Z", presetNeg),
	)
}

// SplittingCurrent: two parallel bulbs share the feed current. The branch
// magnitudes are hand-authored labels, not computed.
//
//	P ─w1─ X ─L1──────── Y ─w2─ N
//	         └S1─ j1 ─L2─┘
func SplittingCurrent() *circuit.Circuit {
	return preset("splitting-current",
		Nodes("X", "Y"),
		Wire("w1", presetPos, "X"),
		Bulb("L1", "X", "Y"),
		Series("X", "Y", S("S1"), L("L2")),
		Wire("w2", "Y", presetNeg),
		Label("w1", "1 A"),
		Label("w2", "1 A"),
		Label("L1", "0.5 A"),
		Label("L2", "0.5 A"),
	)
}
