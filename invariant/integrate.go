// SPDX-License-Identifier: MIT
// Package invariant: the integral estimator.

package invariant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstar/curve"
	"gonum.org/v1/gonum/floats"
)

// Integrate estimates the invariant of d, dispatching on curve.KindOf:
// slit-smeared curves use IntegrateSlit, all others IntegrateUnsmeared.
// A nil curve (an absent tail) integrates to 0.
func Integrate(d curve.Data) (float64, error) {
	if isNil(d) {
		return 0, nil
	}
	if curve.IsSlitSmeared(d) {
		return IntegrateSlit(d)
	}

	return IntegrateUnsmeared(d)
}

// IntegrateUnsmeared returns Σ Qᵢ²·Iᵢ·ΔQᵢ.
//
// The bin widths are ΔQ₀ = (Q₁−Q₀)/2, ΔQₙ₋₁ = (Qₙ₋₁−Qₙ₋₂)/2 and
// ΔQᵢ = (Qᵢ₊₁−Qᵢ₋₁)/2 otherwise. Differences are signed and taken in storage
// order, so the sum equals the trapezoid rule on sorted Q.
//
// Errors: curve.ErrTooFewPoints for fewer than two points; those of curve.Check.
//
// Complexity: O(n).
func IntegrateUnsmeared(d curve.Data) (float64, error) {
	g, err := integrand(d, false)
	if err != nil {
		return 0, err
	}

	return floats.Dot(g, d.Y()), nil
}

// IntegrateSlit returns Σ Qᵢ·dxlᵢ·Iᵢ·ΔQᵢ, the invariant of slit-smeared data.
//
// Errors: curve.ErrMissingSlit when DXL is absent; otherwise as IntegrateUnsmeared.
func IntegrateSlit(d curve.Data) (float64, error) {
	g, err := integrand(d, true)
	if err != nil {
		return 0, err
	}

	return floats.Dot(g, d.Y()), nil
}

// Uncertainty returns sqrt(Σ (gᵢ·ΔIᵢ·ΔQᵢ)²) with the weight g of the
// integral Integrate would use. ΔI defaults to sqrt(|I|) when DY is absent.
// A nil curve has zero uncertainty.
func Uncertainty(d curve.Data) (float64, error) {
	if isNil(d) {
		return 0, nil
	}
	g, err := integrand(d, curve.IsSlitSmeared(d))
	if err != nil {
		return 0, err
	}

	dy := d.DY()
	if len(dy) == len(g) {
		floats.Mul(g, dy)
	} else {
		for i, v := range d.Y() {
			g[i] *= math.Sqrt(math.Abs(v))
		}
	}

	return floats.Norm(g, 2), nil
}

// integrand returns gᵢ·ΔQᵢ for every point.
func integrand(d curve.Data, slit bool) ([]float64, error) {
	if err := curve.Check(d); err != nil {
		return nil, err
	}
	x := d.X()
	n := len(x)
	if n < 2 {
		return nil, fmt.Errorf("%d point(s): %w", n, curve.ErrTooFewPoints)
	}

	out := binWidths(x)
	if slit {
		dxl := d.DXL()
		if len(dxl) != n {
			return nil, curve.ErrMissingSlit
		}
		floats.Mul(out, x)
		floats.Mul(out, dxl)
	} else {
		floats.Mul(out, x)
		floats.Mul(out, x)
	}

	return out, nil
}

// binWidths returns the signed half-distance to the neighbours of each point.
func binWidths(x []float64) []float64 {
	n := len(x)
	dq := make([]float64, n)
	dq[0] = (x[1] - x[0]) / 2
	dq[n-1] = (x[n-1] - x[n-2]) / 2
	for i := 1; i < n-1; i++ {
		dq[i] = (x[i+1] - x[i-1]) / 2
	}

	return dq
}

func isNil(d curve.Data) bool {
	if d == nil {
		return true
	}
	c, ok := d.(*curve.Curve)

	return ok && c == nil
}
