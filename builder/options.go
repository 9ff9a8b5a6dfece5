// SPDX-License-Identifier: MIT
// Package: circuitlab/builder
//
// options.go: functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Defaults are deterministic; later options override earlier ones.

package builder

import "strconv"

// BuilderOption customizes a Build call.
type BuilderOption func(*builderConfig)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	// idFn names the i-th generated junction node (i starts at 1).
	idFn func(int) string
	// autoNodes declares edge endpoints that were not declared explicitly.
	autoNodes bool
}

// junctionID is the default junction naming: "j1", "j2", ...
func junctionID(i int) string { return "j" + strconv.Itoa(i) }

// newBuilderConfig applies options over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: junctionID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the junction naming used by Series.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithAutoNodes makes Wire/Switch/Bulb/Battery declare unknown endpoints
// instead of leaving them for circuit.New to reject.
func WithAutoNodes() BuilderOption {
	return func(c *builderConfig) { c.autoNodes = true }
}
