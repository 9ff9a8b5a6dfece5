// Package presentation renders circuits and evaluation results for humans:
// Mermaid flowcharts and plain-text summaries.
package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/circuitlab/circuit"
)

// Overlay contains dynamic state to draw on the diagram.
type Overlay struct {
	State  circuit.SwitchState
	Result *circuit.Result
}

// GenerateMermaid renders c as a Mermaid flowchart (graph LR).
//
// Shapes and links:
//   - battery terminals are circles, other nodes rounded boxes;
//   - wires and bulbs are plain links, switches dotted links, the battery a
//     thick link;
//   - labels carry the edge ID and, when set, its cosmetic label.
//
// With an overlay, switch and bulb labels gain their position/lit state and
// current-carrying links are coloured (red when the battery is shorted).
func GenerateMermaid(c *circuit.Circuit, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	pos, neg := c.Terminals()
	for _, n := range c.Nodes() {
		id := sanitizeMermaidID(n.ID)
		switch n.ID {
		case pos:
			fmt.Fprintf(&sb, "    %s((\"%s +\"))\n", id, n.ID)
		case neg:
			fmt.Fprintf(&sb, "    %s((\"%s -\"))\n", id, n.ID)
		default:
			fmt.Fprintf(&sb, "    %s(\"%s\")\n", id, n.ID)
		}
	}

	var res *circuit.Result
	var state circuit.SwitchState
	if overlay != nil {
		res, state = overlay.Result, overlay.State
	}

	var hot []string
	for i, e := range c.Edges() {
		a, b := e.Ends()
		text := e.ID()
		switch v := e.(type) {
		case circuit.Switch:
			if overlay != nil {
				text += switchWord(state.Closed(v.ControlID()))
			}
		case circuit.Bulb:
			if res != nil {
				text += bulbWord(res.IsLit(v.Name))
			}
		}
		if l := c.Label(e.ID()); l != "" {
			text += " · " + l
		}
		text = strings.ReplaceAll(text, "\"", "'")

		var link string
		switch e.Kind() {
		case circuit.KindSwitch:
			link = fmt.Sprintf("-. \"%s\" .-", text)
		case circuit.KindBattery:
			link = fmt.Sprintf("=== |\"%s\"|", text)
		default:
			link = fmt.Sprintf("--- |\"%s\"|", text)
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(a), link, sanitizeMermaidID(b))

		if res != nil && res.Carries(e.ID()) {
			hot = append(hot, strconv.Itoa(i))
		}
	}

	if res != nil && len(hot) > 0 {
		colour := "#f9a825"
		if res.Shorted {
			colour = "#d32f2f"
		}
		sb.WriteString("\n    %% Current\n")
		fmt.Fprintf(&sb, "    linkStyle %s stroke:%s,stroke-width:4px;\n", strings.Join(hot, ","), colour)
	}

	return sb.String()
}

func switchWord(closed bool) string {
	if closed {
		return " (closed)"
	}
	return " (open)"
}

func bulbWord(lit bool) string {
	if lit {
		return " (lit)"
	}
	return " (dark)"
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
