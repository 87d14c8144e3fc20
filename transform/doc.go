// SPDX-License-Identifier: MIT

// Package transform maps I(Q) data into a space where a scattering model is a
// straight line, and maps fitted lines back to physical model parameters.
//
// Two transforms are provided, behind the sealed [Transform] interface:
//
//	Guinier   u = Q²,   v = ln I   I(Q) = scale·exp(−(Rg·Q)²/3)
//	PowerLaw  u = ln Q, v = ln I   I(Q) = scale·Q^(−power)
//
// A weighted straight line v = slope·u + intercept fitted in (u, v) space
// becomes a [Model] through [Transform.ToPhysical]; the model evaluates
// intensities and their propagated uncertainties on any Q grid.
//
// [Linearize] converts a whole curve, dropping points the transform cannot
// represent (Q ≤ 0 or I ≤ 0). Smearing half-widths are linearized once at
// the first retained point and the same value is used for every retained
// point; this is an approximation that holds while the fit range is narrow.
package transform
