package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitlab/circuit"
	"github.com/katalvlaran/circuitlab/circuitfile"
)

var errValidation = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check circuit files against the schema and the circuit rules",
		Long:  `Loads each file, validates it and prints topology warnings (isolated nodes, dead ends) that do not fail the check.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				f, err := circuitfile.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					continue
				}
				warns, conductive := circuit.Lint(f.Circuit)
				fmt.Fprintf(out, "ok   %s (%s, %d edges, %d conductive)\n",
					path, f.Circuit.Name(), len(f.Circuit.Edges()), conductive)
				for _, w := range warns {
					fmt.Fprintf(out, "warn %s: %s\n", path, w)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errValidation, failed, len(args))
			}
			return nil
		},
	}
}
