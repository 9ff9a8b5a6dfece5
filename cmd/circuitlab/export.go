package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitlab/circuitfile"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var compress bool
	cmd := &cobra.Command{
		Use:   "export <dir> [name...]",
		Short: "Write library circuits as circuit files",
		Long:  `Writes each named circuit (all of them when no name is given) to <dir>/<name>.yaml, or .yaml.zst with --zstd.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			lib, err := opts.library(cfg, logger)
			if err != nil {
				return err
			}

			dir, names := args[0], args[1:]
			if len(names) == 0 {
				for _, e := range lib.Entries() {
					names = append(names, e.Name)
				}
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			ext := ".yaml"
			if compress {
				ext += ".zst"
			}
			for _, name := range names {
				e, ok := lib.Entry(name)
				if !ok {
					return fmt.Errorf("unknown circuit %q", name)
				}
				path := filepath.Join(dir, name+ext)
				if err := circuitfile.Save(path, e.File); err != nil {
					return fmt.Errorf("export %s: %w", name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "zstd", false, "compress the files with zstd")

	return cmd
}
