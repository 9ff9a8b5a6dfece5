// SPDX-License-Identifier: MIT
// Package: circuitlab/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; validation errors from
//     circuit.New pass through unchanged so circuit sentinels still match.

package builder

import "errors"

// ErrConstructFailed indicates a constructor could not be applied (nil
// constructor, empty series, unknown preset part).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates Lookup was asked for a name not in the catalog.
var ErrUnknownPreset = errors.New("builder: unknown preset")
