package presentation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/circuitlab/circuit"
)

// WriteSummary prints a human-readable report of res for circuit c.
func WriteSummary(w io.Writer, c *circuit.Circuit, state circuit.SwitchState, res circuit.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "circuit:\t%s\n", c.Name())
	var sw []string
	for _, id := range c.Switches() {
		sw = append(sw, id+"="+strings.Trim(switchWord(state.Closed(id)), " ()"))
	}
	fmt.Fprintf(tw, "switches:\t%s\n", orNone(sw))
	if res.Shorted {
		fmt.Fprintf(tw, "shorted:\tyes %v\n", res.ShortPath)
	} else {
		fmt.Fprintf(tw, "shorted:\tno\n")
	}
	fmt.Fprintf(tw, "current:\t%s\n", orNone(res.Current))
	fmt.Fprintln(tw, "bulb\tstate\tcause\tpath")
	for _, b := range res.Bulbs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, strings.Trim(bulbWord(b.Lit), " ()"), b.Cause, orNone(b.Path))
	}

	return tw.Flush()
}

func orNone(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, " ")
}
