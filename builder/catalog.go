// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/circuitlab/circuit"
)

// Preset names a lesson circuit and the lesson it belongs to.
type Preset struct {
	Name   string
	Lesson string
	Title  string
	New    func() *circuit.Circuit
}

var presets = []Preset{
	{Name: "and-gate", Lesson: "logic-gates", Title: "Logic Gate: AND", New: AndGate},
	{Name: "or-gate", Lesson: "logic-gates", Title: "Logic Gate: OR", New: OrGate},
	{Name: "not-gate", Lesson: "logic-gates", Title: "Logic Gate: NOT", New: NotGate},
	{Name: "global-short", Lesson: "short-circuits", Title: "Short across the battery", New: GlobalShort},
	{Name: "series-bypass", Lesson: "short-circuits", Title: "Bypassing one bulb", New: SeriesBypass},
	{Name: "series-pair", Lesson: "choosing-bulbs", Title: "Two bulbs in series", New: SeriesPair},
	{Name: "choosing-bulbs", Lesson: "choosing-bulbs", Title: "Pick the bulb", New: ChoosingBulbs},
	{Name: "splitting-current", Lesson: "splitting-current", Title: "Parallel branches", New: SplittingCurrent},
}

// Catalog returns all presets in a stable order.
func Catalog() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)

	return out
}

// Names returns the preset names in catalog order.
func Names() []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Name)
	}

	return out
}

// Lookup builds the preset called name.
func Lookup(name string) (*circuit.Circuit, error) {
	for _, p := range presets {
		if p.Name == name {
			return p.New(), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
