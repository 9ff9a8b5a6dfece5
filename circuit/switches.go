package circuit

import (
	"fmt"
	"sort"
)

// SwitchState maps a switch control ID to its position: true is closed.
// A missing entry is open. The caller owns the map; evaluation only reads it.
// With and Toggle return new maps so that each toggle event yields a new state.
type SwitchState map[string]bool

// InitialState returns the reset configuration for c: every switch open.
func InitialState(c *Circuit) SwitchState {
	ids := c.Switches()
	s := make(SwitchState, len(ids))
	for _, id := range ids {
		s[id] = false
	}

	return s
}

// Closed reports whether switch id is closed. Safe on a nil state.
func (s SwitchState) Closed(id string) bool { return s[id] }

// Clone returns an independent copy.
func (s SwitchState) Clone() SwitchState {
	out := make(SwitchState, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out
}

// With returns a copy with switch id set to closed.
func (s SwitchState) With(id string, closed bool) SwitchState {
	out := s.Clone()
	out[id] = closed

	return out
}

// Toggle returns a copy with switch id flipped.
func (s SwitchState) Toggle(id string) SwitchState {
	return s.With(id, !s.Closed(id))
}

// ClosedIDs returns the closed switch IDs sorted ascending.
func (s SwitchState) ClosedIDs() []string {
	var out []string
	for id, closed := range s {
		if closed {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Check reports the first entry of s (in sorted order) that no switch in c
// controls. Evaluate itself ignores such entries; Check serves input layers
// that want to reject typos.
func (c *Circuit) Check(s SwitchState) error {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !c.HasSwitch(id) {
			return fmt.Errorf("%s: %q: %w", c.name, id, ErrUnknownSwitch)
		}
	}

	return nil
}
