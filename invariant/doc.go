// SPDX-License-Identifier: MIT

// Package invariant computes the scattering invariant
//
//	Q* = ∫ Q² I(Q) dQ
//
// of a one-dimensional curve, with optional extrapolation beyond the measured
// Q range, and derives the volume fraction and specific surface of a
// two-phase system from it.
//
// A [Calculator] owns one background/scale corrected copy of the input curve.
// The measured part is integrated by [Integrate]: a trapezoid estimate with
// weight Q² for unsmeared (and pinhole) data, and Q·dxl for slit-smeared data.
// Extrapolated tails are built from weighted straight-line fits in Guinier or
// power-law space over the first (low-Q) or last (high-Q) points of the
// curve, evaluated on a synthetic grid down to QMin and up to QMax.
//
// Extrapolation Modes:
//
//	NoExtrapolation  measured range only
//	Low              measured + low-Q tail
//	High             measured + high-Q tail (power law only)
//	Both             measured + both tails
//
// Results are memoized per mode until [Calculator.SetExtrapolation] changes
// the fit settings. Uncertainties of independent contributions add in
// quadrature; the low-Q tail also carries a conservative systematic term.
//
// Volume fraction V solves Q* = 2π²·Δρ²·V(1−V)·1e8 for the root in [0,1];
// specific surface is S = 2π·V(1−V)·P/Q* for Porod constant P.
//
// A Calculator is safe for concurrent use; every call observes the settings
// of the last completed SetExtrapolation.
package invariant
