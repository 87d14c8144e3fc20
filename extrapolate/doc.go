// SPDX-License-Identifier: MIT

// Package extrapolate fits straight lines to linearized scattering data.
//
// An [Extrapolator] holds one linear-space curve (u, v, σ_v), usually the
// output of transform.Linearize, and answers [Extrapolator.Fit] queries over
// sub-ranges [umin, umax]:
//
//   - free fit: weighted least squares of v = a·u + b, solved by QR
//     factorization, with parameter uncertainties from |χ²|·(AᵀA)⁻¹;
//   - fixed slope: closed-form weighted intercept for a given a.
//
// When a curve.Smearer is attached with [WithSmearer], the values are
// smeared over the bin range the smearer reports before the regression, so
// the fitted line describes the unsmeared signal.
//
// Weights are 1/σ with σ taken from DY; absent or non-positive σ counts as 1.
package extrapolate
