// SPDX-License-Identifier: MIT
// Package extrapolate: weighted straight-line fits.

package extrapolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/transform"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Extrapolator fits lines to one linear-space curve.
type Extrapolator struct {
	u, v, sigma []float64
	smearer     curve.Smearer
}

// New prepares an Extrapolator over the linear-space curve linear.
//
// Errors: those of curve.Check.
func New(linear curve.Data, opts ...Option) (*Extrapolator, error) {
	if err := curve.Check(linear); err != nil {
		return nil, fmt.Errorf("extrapolate.New: %w", err)
	}
	o := gatherOptions(opts...)

	u, v := linear.X(), linear.Y()
	sigma := make([]float64, len(u))
	dy := linear.DY()
	for i := range sigma {
		sigma[i] = 1
		if len(dy) == len(u) && dy[i] > 0 {
			sigma[i] = dy[i]
		}
	}

	return &Extrapolator{u: u, v: v, sigma: sigma, smearer: o.smearer}, nil
}

// Fit fits v = a·u + b over the points with umin ≤ u ≤ umax.
// With fixedSlope != nil, a is held at *fixedSlope and only b is fitted.
//
// Implementation:
//   - Stage 1: select in-range points.
//   - Stage 2: if a smearer is attached, smear v over BinRange(umin, umax)
//     and take the smeared value of each in-range point.
//   - Stage 3: free fit by QR of A = [u/σ, 1/σ] against v/σ, or the closed
//     form for a fixed slope.
//   - Stage 4: uncertainties from χ².
//
// Errors:
//   - ErrBadRange for NaN bounds or umin > umax.
//   - ErrTooFewPoints if fewer than two points are in range.
//   - ErrDegenerate if the design matrix is singular.
//   - curve.ErrBadBinRange or the smearer's own error.
//
// Complexity: O(m) for m in-range points (plus the smearer's cost).
func (e *Extrapolator) Fit(umin, umax float64, fixedSlope *float64) (transform.Line, error) {
	if math.IsNaN(umin) || math.IsNaN(umax) || umin > umax {
		return transform.Line{}, fmt.Errorf("Fit [%g, %g]: %w", umin, umax, ErrBadRange)
	}

	// Stage 1
	var idx []int
	for i, u := range e.u {
		if u >= umin && u <= umax {
			idx = append(idx, i)
		}
	}
	if len(idx) < 2 {
		return transform.Line{}, fmt.Errorf("Fit [%g, %g]: %d point(s): %w", umin, umax, len(idx), ErrTooFewPoints)
	}

	// Stage 2
	values, err := e.values(umin, umax, idx)
	if err != nil {
		return transform.Line{}, fmt.Errorf("Fit [%g, %g]: %w", umin, umax, err)
	}

	u := make([]float64, len(idx))
	w := make([]float64, len(idx))
	for k, i := range idx {
		u[k] = e.u[i]
		w[k] = 1 / e.sigma[i]
	}

	// Stage 3-4
	if fixedSlope != nil {
		return fitFixed(u, values, w, *fixedSlope), nil
	}
	line, err := fitFree(u, values, w)
	if err != nil {
		return transform.Line{}, fmt.Errorf("Fit [%g, %g]: %w", umin, umax, err)
	}

	return line, nil
}

// values returns the (possibly smeared) v of every selected point.
func (e *Extrapolator) values(umin, umax float64, idx []int) ([]float64, error) {
	out := make([]float64, len(idx))
	if e.smearer == nil {
		for k, i := range idx {
			out[k] = e.v[i]
		}

		return out, nil
	}

	first, last, err := e.smearer.BinRange(umin, umax)
	if err != nil {
		return nil, fmt.Errorf("smearer bin range: %w", err)
	}
	if err = curve.CheckBinRange(first, last, len(e.v), -1); err != nil {
		return nil, err
	}
	smeared, err := e.smearer.Smear(e.v, first, last)
	if err != nil {
		return nil, fmt.Errorf("smear: %w", err)
	}
	if err = curve.CheckBinRange(first, last, len(e.v), len(smeared)); err != nil {
		return nil, err
	}
	for k, i := range idx {
		if i < first || i > last {
			return nil, fmt.Errorf("point %d outside bins [%d, %d]: %w", i, first, last, curve.ErrBadBinRange)
		}
		out[k] = smeared[i-first]
	}

	return out, nil
}

// fitFixed solves for the intercept with the slope held at a.
func fitFixed(u, v, w []float64, a float64) transform.Line {
	w2 := make([]float64, len(w))
	floats.MulTo(w2, w, w)

	sw := floats.Sum(w2)
	b := (floats.Dot(w2, v) - a*floats.Dot(w2, u)) / sw
	chi2 := chiSquare(u, v, w, a, b)

	return transform.Line{
		Slope:      a,
		Intercept:  b,
		DIntercept: math.Sqrt(math.Abs(chi2) / sw),
		Points:     len(u),
	}
}

// fitFree solves the weighted least-squares problem by QR and derives the
// covariance from the triangular factor.
func fitFree(u, v, w []float64) (transform.Line, error) {
	if floats.Min(u) == floats.Max(u) {
		return transform.Line{}, ErrDegenerate
	}

	m := len(u)
	a := mat.NewDense(m, 2, nil)
	rhs := mat.NewVecDense(m, nil)
	for k := range u {
		a.Set(k, 0, u[k]*w[k])
		a.Set(k, 1, w[k])
		rhs.SetVec(k, v[k]*w[k])
	}

	var qr mat.QR
	qr.Factorize(a)
	if math.IsInf(qr.Cond(), 1) {
		return transform.Line{}, ErrDegenerate
	}
	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, rhs); err != nil {
		return transform.Line{}, fmt.Errorf("%v: %w", err, ErrDegenerate)
	}

	// (AᵀA)⁻¹ = R⁻¹R⁻ᵀ with R the leading 2×2 block of the factorization.
	var r, rinv mat.Dense
	qr.RTo(&r)
	if err := rinv.Inverse(r.Slice(0, 2, 0, 2)); err != nil {
		return transform.Line{}, fmt.Errorf("%v: %w", err, ErrDegenerate)
	}
	var cov mat.SymDense
	cov.SymOuterK(1, &rinv)

	slope, intercept := x.AtVec(0), x.AtVec(1)
	chi2 := math.Abs(chiSquare(u, v, w, slope, intercept))

	return transform.Line{
		Slope:      slope,
		Intercept:  intercept,
		DSlope:     math.Sqrt(chi2 * cov.At(0, 0)),
		DIntercept: math.Sqrt(chi2 * cov.At(1, 1)),
		Points:     m,
	}, nil
}

func chiSquare(u, v, w []float64, a, b float64) float64 {
	var chi2 float64
	for k := range u {
		r := (v[k] - (a*u[k] + b)) * w[k]
		chi2 += r * r
	}

	return chi2
}
