// SPDX-License-Identifier: MIT
// Package invariant: sentinel errors.
//
// Each sentinel wraps one kind from the root package. Calculator methods add
// their name as an operation tag, so messages read
// "QStar: invariant: ...: qstar: ...".

package invariant

import (
	"fmt"

	"github.com/katalvlaran/qstar"
)

var (
	// ErrBadOption indicates an option value outside its documented domain.
	ErrBadOption = fmt.Errorf("invariant: invalid option: %w", qstar.ErrValidation)

	// ErrBadConfig indicates a configuration document that cannot be decoded.
	ErrBadConfig = fmt.Errorf("invariant: invalid configuration: %w", qstar.ErrValidation)

	// ErrUnknownMode indicates an extrapolation mode outside Mode's values.
	ErrUnknownMode = fmt.Errorf("invariant: unknown extrapolation mode: %w", qstar.ErrValidation)

	// ErrUnknownRange indicates an extrapolation range other than LowQ/HighQ.
	ErrUnknownRange = fmt.Errorf("invariant: unknown extrapolation range: %w", qstar.ErrValidation)

	// ErrHighNeedsPowerLaw indicates a non power-law function for the high-Q range.
	ErrHighNeedsPowerLaw = fmt.Errorf("invariant: high-q extrapolation only allows a power law: %w", qstar.ErrValidation)

	// ErrBadPoints indicates fewer than one point for an extrapolation fit,
	// or more points than the curve holds.
	ErrBadPoints = fmt.Errorf("invariant: invalid number of extrapolation points: %w", qstar.ErrValidation)

	// ErrBadPower indicates a fixed power that is not finite and positive,
	// or a fixed power combined with a Guinier fit.
	ErrBadPower = fmt.Errorf("invariant: invalid fixed power: %w", qstar.ErrValidation)

	// ErrBadContrast indicates a contrast that is not finite and positive.
	ErrBadContrast = fmt.Errorf("invariant: contrast must be greater than zero: %w", qstar.ErrValidation)

	// ErrNegativeInvariant indicates Q* < 0, for which no volume fraction exists.
	ErrNegativeInvariant = fmt.Errorf("invariant: invariant must not be negative: %w", qstar.ErrDomain)

	// ErrNegativeDiscriminant indicates 1 − 4k < 0 in the volume fraction quadratic.
	ErrNegativeDiscriminant = fmt.Errorf("invariant: negative discriminant: %w", qstar.ErrDomain)

	// ErrZeroInvariant indicates Q* == 0 where it is divided by.
	ErrZeroInvariant = fmt.Errorf("invariant: invariant is zero: %w", qstar.ErrDomain)

	// ErrNoPhysicalRoot indicates that neither volume fraction root lies in [0,1].
	ErrNoPhysicalRoot = fmt.Errorf("invariant: no volume fraction root in [0,1]: %w", qstar.ErrInconsistent)
)

// wrap attaches an operation tag; nil stays nil.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
