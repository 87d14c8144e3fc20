// SPDX-License-Identifier: MIT
// Package invariant: volume fraction and specific surface.

package invariant

import (
	"fmt"
	"math"
)

// VolumeFraction returns the volume fraction V ∈ [0,1] of a two-phase system
// with scattering length density contrast Δρ (Å⁻²), solving
//
//	k = 1e−8·Q*/(2(π·Δρ)²) = V(1−V)
//
// for the smaller root when it is physical.
//
// Errors:
//   - ErrBadContrast for contrast ≤ 0.
//   - ErrNegativeInvariant for Q* < 0.
//   - ErrNegativeDiscriminant for 1 − 4k < 0.
//   - ErrNoPhysicalRoot if neither root lies in [0,1].
//   - any QStar error.
func (c *Calculator) VolumeFraction(contrast float64, mode Mode) (float64, error) {
	v, _, err := c.VolumeFractionWithError(contrast, mode)

	return v, err
}

// VolumeFractionWithError returns V and dV = c·dQ*/sqrt(1 − 4k) with
// c = 1e−8/(2(π·Δρ)²). dV is +Inf when the discriminant is zero.
func (c *Calculator) VolumeFractionWithError(contrast float64, mode Mode) (float64, float64, error) {
	if !finite(contrast) || contrast <= 0 {
		return 0, 0, wrap("VolumeFraction", fmt.Errorf("%g: %w", contrast, ErrBadContrast))
	}

	c.mu.Lock()
	r, err := c.qstar(mode)
	c.mu.Unlock()
	if err != nil {
		return 0, 0, wrap("VolumeFraction", err)
	}

	vs, err := solveVolume(r.q, r.dq, contrast)
	if err != nil {
		return 0, 0, wrap("VolumeFraction", err)
	}

	return vs.v, vs.dv, nil
}

// Surface returns the specific surface S = 2π·V(1−V)·P/Q* for Porod
// constant P.
//
// Errors: those of VolumeFraction; ErrZeroInvariant for Q* == 0.
func (c *Calculator) Surface(contrast, porod float64, mode Mode) (float64, error) {
	s, _, err := c.SurfaceWithError(contrast, porod, mode)

	return s, err
}

// SurfaceWithError returns S and
//
//	dS = sqrt((∂S/∂V·dV)² + (∂S/∂Q*·dQ*)²)
//
// treating dV and dQ* as independent.
func (c *Calculator) SurfaceWithError(contrast, porod float64, mode Mode) (float64, float64, error) {
	if !finite(contrast) || contrast <= 0 {
		return 0, 0, wrap("Surface", fmt.Errorf("%g: %w", contrast, ErrBadContrast))
	}

	c.mu.Lock()
	r, err := c.qstar(mode)
	c.mu.Unlock()
	if err != nil {
		return 0, 0, wrap("Surface", err)
	}

	vs, err := solveVolume(r.q, r.dq, contrast)
	if err != nil {
		return 0, 0, wrap("Surface", err)
	}
	s, ds, err := solveSurface(r.q, r.dq, vs.v, vs.dv, porod)

	return s, ds, wrap("Surface", err)
}

type volume struct {
	v, dv float64
}

func solveVolume(q, dq, contrast float64) (volume, error) {
	if q < 0 {
		return volume{}, fmt.Errorf("Q* %g: %w", q, ErrNegativeInvariant)
	}
	pc := math.Pi * math.Abs(contrast)
	coef := 1e-8 / (2 * pc * pc)
	k := coef * q
	disc := 1 - 4*k

	switch {
	case disc < 0:
		return volume{}, fmt.Errorf("1-4k = %g: %w", disc, ErrNegativeDiscriminant)
	case disc == 0:
		return volume{v: 0.5, dv: math.Inf(1)}, nil
	}

	root := math.Sqrt(disc)
	dv := coef * dq / root
	if v1 := 0.5 * (1 - root); v1 >= 0 && v1 <= 1 {
		return volume{v: v1, dv: dv}, nil
	}
	if v2 := 0.5 * (1 + root); v2 >= 0 && v2 <= 1 {
		return volume{v: v2, dv: dv}, nil
	}

	return volume{}, fmt.Errorf("1-4k = %g: %w", disc, ErrNoPhysicalRoot)
}

func solveSurface(q, dq, v, dv, porod float64) (float64, float64, error) {
	if q == 0 {
		return 0, 0, ErrZeroInvariant
	}
	s := 2 * math.Pi * v * (1 - v) * porod / q

	var byV float64
	if dsdv := 2 * math.Pi * porod * (1 - 2*v) / q; dsdv != 0 {
		byV = dsdv * dv
	}
	byQ := 2 * math.Pi * porod * v * (1 - v) / (q * q) * dq

	return s, math.Hypot(byV, byQ), nil
}
