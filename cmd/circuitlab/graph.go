package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/internal/presentation"
)

// newGraphCmd represents the graph command
func newGraphCmd(opts *rootOptions) *cobra.Command {
	var (
		closeIDs []string
		plain    bool
	)
	cmd := &cobra.Command{
		Use:   "graph <name|file>",
		Short: "Export the circuit as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart (graph LR) of the circuit, with switch positions, lit bulbs and current highlighted unless --plain is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(args[0])
			if err != nil {
				return err
			}

			var overlay *presentation.Overlay
			if !plain {
				state, err := positions(f, closeIDs, nil)
				if err != nil {
					return err
				}
				res := circuit.Evaluate(f.Circuit, state)
				overlay = &presentation.Overlay{State: state, Result: &res}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), presentation.GenerateMermaid(f.Circuit, overlay))
			return err
		},
	}
	cmd.Flags().StringSliceVar(&closeIDs, "close", nil, "switches to close")
	cmd.Flags().BoolVar(&plain, "plain", false, "draw the topology only")

	return cmd
}
