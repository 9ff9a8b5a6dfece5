package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/circuitfile"
	"github.com/katalvlaran/circuitlab/internal/presentation"
)

// positions applies the --close and --open flags on top of the reset state.
func positions(f *circuitfile.File, closeIDs, openIDs []string) (circuit.SwitchState, error) {
	overrides := circuit.SwitchState{}
	for _, id := range closeIDs {
		overrides[id] = true
	}
	for _, id := range openIDs {
		overrides[id] = false
	}
	if err := f.Circuit.Check(overrides); err != nil {
		return nil, err
	}

	state := f.State()
	for id, closed := range overrides {
		state[id] = closed
	}

	return state, nil
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var (
		closeIDs []string
		openIDs  []string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "eval <name|file>",
		Short: "Evaluate a circuit under one switch configuration",
		Long:  `Prints which bulbs are lit and why, the current-carrying edges and whether the battery is shorted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.resolve(args[0])
			if err != nil {
				return err
			}
			state, err := positions(f, closeIDs, openIDs)
			if err != nil {
				return err
			}
			res := circuit.Evaluate(f.Circuit, state)

			out := cmd.OutOrStdout()
			if !asJSON {
				return presentation.WriteSummary(out, f.Circuit, state, res)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(struct {
				Circuit string              `json:"circuit"`
				State   circuit.SwitchState `json:"state"`
				Result  circuit.Result      `json:"result"`
			}{f.Circuit.Name(), state, res}); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&closeIDs, "close", nil, "switches to close")
	cmd.Flags().StringSliceVar(&openIDs, "open", nil, "switches to open")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
