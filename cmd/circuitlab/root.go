package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuitlab/circuitfile"
	"github.com/katalvlaran/circuitlab/internal/config"
	"github.com/katalvlaran/circuitlab/internal/library"
	"github.com/katalvlaran/circuitlab/internal/logging"
)

// rootOptions carries the persistent flags to every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	dirs       []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "circuitlab",
		Short:         "circuitlab evaluates battery, switch and bulb circuits",
		Long:          `circuitlab decides which bulbs light, which wires carry current and whether the battery is shorted, for lesson circuits built from wires, switches and bulbs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	cmd.PersistentFlags().StringSliceVar(&opts.dirs, "circuits", nil, "extra directories of circuit files")

	cmd.AddCommand(
		newListCmd(opts),
		newEvalCmd(opts),
		newGraphCmd(opts),
		newValidateCmd(),
		newExportCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// load reads the configuration and applies the flag overrides.
func (o *rootOptions) load() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	cfg.Circuits.Dirs = append(cfg.Circuits.Dirs, o.dirs...)

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}

	return cfg, logging.NewWithWriter(os.Stderr, level, logging.Format(cfg.Log.Format)), nil
}

// library returns the presets plus every configured circuit directory.
func (o *rootOptions) library(cfg config.Config, logger *slog.Logger) (*library.Library, error) {
	lib := library.Default()
	for _, dir := range cfg.Circuits.Dirs {
		n, err := lib.AddDir(dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("circuits loaded", "dir", dir, "count", n)
	}

	return lib, nil
}

// resolve finds arg either as a circuit file on disk or as a library name.
func (o *rootOptions) resolve(arg string) (*circuitfile.File, error) {
	if circuitfile.IsCircuitFile(arg) {
		if _, err := os.Stat(arg); err == nil {
			return circuitfile.Load(arg)
		}
	}

	cfg, logger, err := o.load()
	if err != nil {
		return nil, err
	}
	lib, err := o.library(cfg, logger)
	if err != nil {
		return nil, err
	}
	e, ok := lib.Entry(arg)
	if !ok {
		return nil, fmt.Errorf("unknown circuit %q (try `circuitlab list`)", arg)
	}

	return e.File, nil
}
