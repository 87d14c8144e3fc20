// SPDX-License-Identifier: MIT
// Package curve: background/scale correction and grid helpers.

package curve

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Corrected returns a new curve with I' = scale·I − background.
// ΔI' = |scale|·ΔI when d carries errors (see HasErrors); otherwise
// ΔI' = sqrt(|I'|). X and the smearing sequences are shared with d.
//
// Errors: those of Check.
func Corrected(d Data, scale, background float64) (*Curve, error) {
	if err := Check(d); err != nil {
		return nil, err
	}

	y := make([]float64, len(d.Y()))
	floats.ScaleTo(y, scale, d.Y())
	floats.AddConst(-background, y)

	dy := make([]float64, len(y))
	if HasErrors(d) {
		floats.ScaleTo(dy, math.Abs(scale), d.DY())
	} else {
		for i, v := range y {
			dy[i] = math.Sqrt(math.Abs(v))
		}
	}

	return New(d.X(), y, WithDY(dy), WithDX(d.DX()), WithSlit(d.DXL(), d.DXW()))
}

// Linspace returns n evenly spaced values over [start, end], both endpoints
// included. n < 1 yields nil; n == 1 yields {start}.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{start}
	}

	out := floats.Span(make([]float64, n), start, end)
	out[n-1] = end

	return out
}
