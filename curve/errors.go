// SPDX-License-Identifier: MIT
// Package curve: sentinel errors.
//
// Every sentinel wraps a kind from the root package (qstar.ErrValidation),
// so both errors.Is(err, ErrLengthMismatch) and
// errors.Is(err, qstar.ErrValidation) hold for the same failure.

package curve

import (
	"fmt"

	"github.com/katalvlaran/qstar"
)

var (
	// ErrNotCurve indicates that the supplied value does not satisfy the
	// curve contract (nil data or nil *Curve).
	ErrNotCurve = fmt.Errorf("curve: data must satisfy the curve contract: %w", qstar.ErrValidation)

	// ErrLengthMismatch indicates that Y or a present optional sequence
	// (DX, DY, DXL, DXW) has a different length than X.
	ErrLengthMismatch = fmt.Errorf("curve: sequence length mismatch: %w", qstar.ErrValidation)

	// ErrNotFinite indicates a NaN or ±Inf in X, Y or DY.
	ErrNotFinite = fmt.Errorf("curve: NaN or Inf value: %w", qstar.ErrValidation)

	// ErrTooFewPoints indicates that an operation needs at least two points.
	ErrTooFewPoints = fmt.Errorf("curve: at least two points required: %w", qstar.ErrValidation)

	// ErrMissingSlit indicates that slit-smeared processing was requested but
	// DXL is absent or does not match X in length.
	ErrMissingSlit = fmt.Errorf("curve: slit length (dxl) missing: %w", qstar.ErrValidation)

	// ErrBadBinRange indicates a Smearer returned bins outside the curve or
	// with first > last.
	ErrBadBinRange = fmt.Errorf("curve: invalid smearing bin range: %w", qstar.ErrValidation)
)
