// SPDX-License-Identifier: MIT
// Package transform: whole-curve linearization.

package transform

import (
	"fmt"

	"github.com/katalvlaran/qstar/curve"
)

// Linearize maps d into the linear space of t.
//
// Implementation:
//   - Points with no image (Q ≤ 0 or I ≤ 0) are dropped.
//   - σ_v = ΔI/I when ΔI > 0, otherwise 1; stored as DY of the result.
//   - Smearing half-widths (DX, or DXL/DXW for slit curves) are linearized
//     at the first retained point and broadcast to every retained point.
//
// The returned curve carries the same smearing kind as d whenever at least
// one point is retained.
//
// Errors: those of curve.Check; ErrUnknownKind for a nil transform.
//
// Complexity: O(n).
func Linearize(t Transform, d curve.Data) (*curve.Curve, error) {
	if t == nil {
		return nil, fmt.Errorf("Linearize: %w", ErrUnknownKind)
	}
	if err := curve.Check(d); err != nil {
		return nil, fmt.Errorf("Linearize: %w", err)
	}

	x, y, dy := d.X(), d.Y(), d.DY()
	hasDY := len(dy) == len(x)
	var (
		u, v, sigma []float64
		kept        []int
	)
	for i := range x {
		ui, vi, ok := t.LinearizePoint(x[i], y[i])
		if !ok {
			continue
		}
		s := 1.0
		if hasDY && dy[i] > 0 {
			s = dy[i] / y[i]
		}
		u = append(u, ui)
		v = append(v, vi)
		sigma = append(sigma, s)
		kept = append(kept, i)
	}

	opts := []curve.Option{curve.WithDY(sigma)}
	if len(kept) > 0 {
		first := kept[0]
		switch curve.KindOf(d) {
		case curve.SlitSmeared:
			dxl := broadcast(t.LinearizeWidth(x[first], d.DXL()[first]), len(kept))
			dxw := broadcast(t.LinearizeWidth(x[first], d.DXW()[first]), len(kept))
			opts = append(opts, curve.WithSlit(dxl, dxw))
		case curve.PinholeSmeared:
			opts = append(opts, curve.WithDX(broadcast(t.LinearizeWidth(x[first], d.DX()[first]), len(kept))))
		}
	}

	return curve.New(u, v, opts...)
}

func broadcast(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
