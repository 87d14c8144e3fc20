// SPDX-License-Identifier: MIT
// Package transform: power law.

package transform

import "math"

// PowerLaw linearizes I(Q) = scale·Q^(−power) as ln I = −power·ln Q + ln scale.
type PowerLaw struct{}

func (PowerLaw) sealed() {}

// Kind returns KindPowerLaw.
func (PowerLaw) Kind() Kind { return KindPowerLaw }

// LinearizeQ returns ln Q.
func (PowerLaw) LinearizeQ(q float64) float64 { return math.Log(q) }

// LinearizePoint returns (ln Q, ln I).
func (PowerLaw) LinearizePoint(q, i float64) (u, v float64, ok bool) {
	if q <= 0 || i <= 0 {
		return 0, 0, false
	}

	return math.Log(q), math.Log(i), true
}

// LinearizeWidth returns ln(1 + dq/q).
func (PowerLaw) LinearizeWidth(q, dq float64) float64 {
	return math.Log1p(dq / q)
}

// ValidShape reports power > 0.
func (PowerLaw) ValidShape(power float64) bool { return power > 0 }

// ToPhysical converts slope a and intercept b into power = −a and
// scale = exp(b), with dPower = |da| and dScale = exp(b)·db.
func (PowerLaw) ToPhysical(fit Line) (Model, error) {
	scale := math.Exp(fit.Intercept)

	return Model{
		Kind:   KindPowerLaw,
		Scale:  scale,
		Shape:  -fit.Slope,
		DScale: scale * math.Abs(fit.DIntercept),
		DShape: math.Abs(fit.DSlope),
	}, nil
}

func powerLaw(scale, power, q float64) float64 {
	return scale * math.Pow(q, -power)
}

// powerLawError propagates dScale and dPower into dI at q.
func powerLawError(m Model, q float64) float64 {
	p := math.Pow(q, -m.Shape)
	dIdScale := p
	dIdPower := -m.Scale * p * math.Log(q)

	return math.Hypot(dIdScale*m.DScale, dIdPower*m.DShape)
}
