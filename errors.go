// SPDX-License-Identifier: MIT
// Package qstar: error kinds shared by every subpackage.
//
// Error policy:
//   - Each subpackage declares its own sentinels in errors.go.
//   - Every sentinel wraps exactly one of the kinds below, so callers can
//     branch either on the precise sentinel or on the kind via errors.Is.
//   - Operation context is attached at call sites with "%w" wrapping.
//   - Nothing is retried internally; every error is terminal for its call.

package qstar

import "errors"

var (
	// ErrValidation marks input contract violations: wrong curve shape,
	// mismatched lengths, too few points, missing slit widths, bad arguments.
	// The caller must fix the inputs.
	ErrValidation = errors.New("qstar: invalid input")

	// ErrDomain marks inputs that are well-formed but fall outside the
	// physical model: negative or zero invariant where it is divided by,
	// negative discriminant, fitted shape parameters out of range.
	ErrDomain = errors.New("qstar: outside model domain")

	// ErrInconsistent marks numerically inconsistent results, e.g. neither
	// root of the volume fraction quadratic lies in [0,1].
	ErrInconsistent = errors.New("qstar: inconsistent result")
)
