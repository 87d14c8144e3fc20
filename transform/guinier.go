// SPDX-License-Identifier: MIT
// Package transform: Guinier law.

package transform

import "math"

// Guinier linearizes I(Q) = scale·exp(−(Rg·Q)²/3) as ln I = −(Rg²/3)·Q² + ln scale.
type Guinier struct{}

func (Guinier) sealed() {}

// Kind returns KindGuinier.
func (Guinier) Kind() Kind { return KindGuinier }

// LinearizeQ returns Q².
func (Guinier) LinearizeQ(q float64) float64 { return q * q }

// LinearizePoint returns (Q², ln I).
func (Guinier) LinearizePoint(q, i float64) (u, v float64, ok bool) {
	if q <= 0 || i <= 0 {
		return 0, 0, false
	}

	return q * q, math.Log(i), true
}

// LinearizeWidth returns (q+dq)² − q².
func (Guinier) LinearizeWidth(q, dq float64) float64 {
	return (q+dq)*(q+dq) - q*q
}

// ValidShape reports Rg > 0.
func (Guinier) ValidShape(rg float64) bool { return rg > 0 }

// ToPhysical converts slope a and intercept b into Rg = sqrt(−3a) and
// scale = exp(b). Uncertainties follow first-order propagation:
// dScale = exp(b)·db, dRg = 3/(2·sqrt(−3a))·da.
//
// Errors: ErrGuinierSlope if a ≥ 0.
func (Guinier) ToPhysical(fit Line) (Model, error) {
	if fit.Slope >= 0 || math.IsNaN(fit.Slope) {
		return Model{}, ErrGuinierSlope
	}
	root := math.Sqrt(-3 * fit.Slope)
	scale := math.Exp(fit.Intercept)

	return Model{
		Kind:   KindGuinier,
		Scale:  scale,
		Shape:  root,
		DScale: scale * math.Abs(fit.DIntercept),
		DShape: 3 / (2 * root) * math.Abs(fit.DSlope),
	}, nil
}

func guinier(scale, rg, q float64) float64 {
	return scale * math.Exp(-(rg*q)*(rg*q)/3)
}

// guinierError propagates dScale and dRg into dI at q.
func guinierError(m Model, q float64) float64 {
	e := math.Exp(-(m.Shape * q) * (m.Shape * q) / 3)
	dIdScale := e
	dIdRg := m.Scale * e * (-2 * m.Shape * q * q / 3)

	return math.Hypot(dIdScale*m.DScale, dIdRg*m.DShape)
}
