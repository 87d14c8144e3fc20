// SPDX-License-Identifier: MIT

// Package qstar reduces one-dimensional small-angle scattering curves I(Q)
// to the scattering invariant Q* and the quantities derived from it.
//
// 🚀 What is qstar?
//
//	A small, synchronous, pure-Go engine that brings together:
//		• Curve contract: validated (Q, I, ΔI) triples with optional smearing widths
//		• Linearizing transforms: Guinier and power-law (Porod) models
//		• Extrapolation: smearing-aware weighted linear fits in linear space
//		• Invariant: Q* = ∫Q²I(Q)dQ with low/high-Q extrapolated tails
//		• Solvers: volume fraction and specific surface with propagated errors
//
// ✨ Why choose qstar?
//
//   - Explicit error kinds: ErrValidation, ErrDomain, ErrInconsistent (errors.Is)
//   - No module-level state: Q limits and step counts live in Options
//   - Deterministic: identical input yields bit-identical output
//
// Under the hood, everything is organized under four subpackages:
//
//	curve/      : curve contract, CurveKind, Smearer contract, corrections
//	transform/  : Guinier and PowerLaw linearizations + fitted Model
//	extrapolate/: weighted least squares over a linear-space sub-range
//	invariant/  : Calculator: integral estimator, extrapolation, solvers, Config
//
// Quick example:
//
//	c, _ := curve.New(q, iq, curve.WithDY(diq))
//	calc, _ := invariant.New(c, invariant.WithBackground(0.01))
//	qs, dqs, err := calc.QStarWithError(invariant.Both)
//	v, dv, err := calc.VolumeFractionWithError(2.6e-6, invariant.Both)
//
//	go get github.com/katalvlaran/qstar
package qstar
