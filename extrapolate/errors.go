// SPDX-License-Identifier: MIT
// Package extrapolate: sentinel errors.

package extrapolate

import (
	"fmt"

	"github.com/katalvlaran/qstar"
)

var (
	// ErrTooFewPoints indicates fewer than two points inside the fit range.
	ErrTooFewPoints = fmt.Errorf("extrapolate: at least two points required in fit range: %w", qstar.ErrValidation)

	// ErrBadRange indicates a NaN bound or umin > umax.
	ErrBadRange = fmt.Errorf("extrapolate: invalid fit range: %w", qstar.ErrValidation)

	// ErrDegenerate indicates a singular design matrix (e.g. all u equal).
	ErrDegenerate = fmt.Errorf("extrapolate: degenerate fit design: %w", qstar.ErrDomain)
)
