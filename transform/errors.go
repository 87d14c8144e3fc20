// SPDX-License-Identifier: MIT
// Package transform: sentinel errors.

package transform

import (
	"fmt"

	"github.com/katalvlaran/qstar"
)

var (
	// ErrUnknownKind is returned by ParseKind and For for an unrecognized
	// transform name or value.
	ErrUnknownKind = fmt.Errorf("transform: unknown transform kind: %w", qstar.ErrValidation)

	// ErrGuinierSlope is returned when a Guinier fit yields slope ≥ 0, for
	// which no real radius of gyration exists.
	ErrGuinierSlope = fmt.Errorf("transform: guinier slope must be negative: %w", qstar.ErrDomain)

	// ErrBadShape is returned when a model is evaluated with a shape parameter
	// outside its domain (Rg ≤ 0, power ≤ 0 or scale ≤ 0).
	ErrBadShape = fmt.Errorf("transform: model parameters out of range: %w", qstar.ErrDomain)
)
