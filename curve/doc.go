// SPDX-License-Identifier: MIT

// Package curve defines the one-dimensional scattering curve consumed by the
// invariant engine.
//
// A curve is an ordered sequence of (Q, I, ΔI) triples with optional
// resolution information:
//
//   - DX : per-point Gaussian Q resolution (pinhole smearing);
//   - DXL: per-point slit length half-width (slit smearing);
//   - DXW: per-point slit width half-width (slit smearing).
//
// Any type exposing these sequences satisfies [Data]; [Check] validates the
// capability set explicitly and [KindOf] classifies the curve once into a
// closed [Kind] (Unsmeared, PinholeSmeared, SlitSmeared). The engine treats
// every sequence as read-only and shares it by reference.
//
// The package also declares the [Smearer] contract. Smearers are built
// elsewhere; the engine only asks them for an unsmeared bin range and to
// smear an intensity array.
package curve
