// SPDX-License-Identifier: MIT

package invariant_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qstar/curve"
	"github.com/stretchr/testify/require"
)

// porodA is chosen so that ∫Q²·(porodA/Q²)dQ over [0.01, 0.11] is 7.48959e-5.
const porodA = 7.48959e-4

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// flatInvariant returns I = porodA/Q² on 101 points over [0.01, 0.11], so
// Q²·I is constant and the trapezoid rule is exact.
func flatInvariant(t testing.TB) *curve.Curve {
	t.Helper()
	q := curve.Linspace(0.01, 0.11, 101)
	iq := make([]float64, len(q))
	diq := make([]float64, len(q))
	for i, v := range q {
		iq[i] = porodA / (v * v)
		diq[i] = 0.01 * iq[i]
	}
	c, err := curve.New(q, iq, curve.WithDY(diq))
	require.NoError(t, err)

	return c
}

// grid returns 1e-4, 2e-4, ..., 0.1.
func grid() []float64 {
	q := make([]float64, 1000)
	for i := range q {
		q[i] = 1e-4 * float64(i+1)
	}

	return q
}

// guinierCurve samples 1.5·exp(−(30Q)²/3) on grid with 10% errors.
func guinierCurve(t testing.TB) *curve.Curve {
	t.Helper()
	return modelCurve(t, func(q float64) float64 { return 1.5 * math.Exp(-(30*q)*(30*q)/3) })
}

// powerLawCurve samples 1.5·Q⁻³ on grid with 10% errors.
func powerLawCurve(t testing.TB) *curve.Curve {
	t.Helper()
	return modelCurve(t, func(q float64) float64 { return 1.5 * math.Pow(q, -3) })
}

func modelCurve(t testing.TB, f func(float64) float64) *curve.Curve {
	q := grid()
	iq := make([]float64, len(q))
	diq := make([]float64, len(q))
	for i, v := range q {
		iq[i] = f(v)
		diq[i] = 0.1 * iq[i]
	}
	c, err := curve.New(q, iq, curve.WithDY(diq))
	require.NoError(t, err)

	return c
}

func ptr(f float64) *float64 { return &f }
