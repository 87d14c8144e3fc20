// SPDX-License-Identifier: MIT
// Package transform_test verifies linearization, model conversion and
// model evaluation for both transforms.

package transform_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/qstar"
	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]transform.Kind{
		"guinier":   transform.KindGuinier,
		" Guinier ": transform.KindGuinier,
		"power_law": transform.KindPowerLaw,
		"PowerLaw":  transform.KindPowerLaw,
		"power-law": transform.KindPowerLaw,
	} {
		got, err := transform.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := transform.ParseKind("porod")
	require.ErrorIs(t, err, transform.ErrUnknownKind)
	assert.ErrorIs(t, err, qstar.ErrValidation)

	var k transform.Kind
	require.NoError(t, k.UnmarshalText([]byte("power_law")))
	assert.Equal(t, transform.KindPowerLaw, k)
	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "power_law", string(text))

	_, err = transform.Kind(7).MarshalText()
	assert.ErrorIs(t, err, transform.ErrUnknownKind)
}

func TestFor(t *testing.T) {
	g, err := transform.For(transform.KindGuinier)
	require.NoError(t, err)
	assert.Equal(t, transform.KindGuinier, g.Kind())
	p, err := transform.For(transform.KindPowerLaw)
	require.NoError(t, err)
	assert.Equal(t, transform.KindPowerLaw, p.Kind())
	_, err = transform.For(transform.Kind(-1))
	assert.ErrorIs(t, err, transform.ErrUnknownKind)
}

func TestLinearizePointAndWidth(t *testing.T) {
	g := transform.Guinier{}
	u, v, ok := g.LinearizePoint(0.1, math.E)
	require.True(t, ok)
	assert.InDelta(t, 0.01, u, 1e-15)
	assert.InDelta(t, 1, v, 1e-15)
	assert.InDelta(t, 0.01, g.LinearizeQ(0.1), 1e-15)
	assert.InDelta(t, 0.21, g.LinearizeWidth(1, 0.1), 1e-12)

	p := transform.PowerLaw{}
	u, v, ok = p.LinearizePoint(math.E, 1)
	require.True(t, ok)
	assert.InDelta(t, 1, u, 1e-15)
	assert.InDelta(t, 0, v, 1e-15)
	assert.InDelta(t, math.Log(1.5), p.LinearizeWidth(2, 1), 1e-15)

	for _, tr := range []transform.Transform{g, p} {
		_, _, ok = tr.LinearizePoint(0, 1)
		assert.False(t, ok)
		_, _, ok = tr.LinearizePoint(1, 0)
		assert.False(t, ok)
		_, _, ok = tr.LinearizePoint(1, -2)
		assert.False(t, ok)
	}
}

func TestGuinier_ToPhysical(t *testing.T) {
	m, err := transform.Guinier{}.ToPhysical(transform.Line{Slope: -300, Intercept: math.Log(1.5), DSlope: 2, DIntercept: 0.01})
	require.NoError(t, err)
	assert.Equal(t, transform.KindGuinier, m.Kind)
	assert.InDelta(t, 30, m.Shape, 1e-12)
	assert.InDelta(t, 1.5, m.Scale, 1e-12)
	assert.InDelta(t, 0.015, m.DScale, 1e-12)
	assert.InDelta(t, 0.1, m.DShape, 1e-12)

	for _, slope := range []float64{0, 1e-3, math.NaN()} {
		_, err = transform.Guinier{}.ToPhysical(transform.Line{Slope: slope})
		require.ErrorIs(t, err, transform.ErrGuinierSlope)
		assert.ErrorIs(t, err, qstar.ErrDomain)
	}
}

func TestPowerLaw_ToPhysical(t *testing.T) {
	m, err := transform.PowerLaw{}.ToPhysical(transform.Line{Slope: -4, Intercept: 0, DSlope: -0.2, DIntercept: 0.5})
	require.NoError(t, err)
	assert.Equal(t, transform.KindPowerLaw, m.Kind)
	assert.InDelta(t, 4, m.Shape, 1e-15)
	assert.InDelta(t, 1, m.Scale, 1e-15)
	assert.InDelta(t, 0.2, m.DShape, 1e-15)
	assert.InDelta(t, 0.5, m.DScale, 1e-15)
}

func TestModel_Evaluate(t *testing.T) {
	q := []float64{0.01, 0.1, 1}
	approx := cmpopts.EquateApprox(1e-14, 0)

	got, err := transform.Model{Kind: transform.KindGuinier, Scale: 2, Shape: 10}.Evaluate(q)
	require.NoError(t, err)
	diff(t, []float64{2 * math.Exp(-0.01/3), 2 * math.Exp(-1.0/3), 2 * math.Exp(-100.0/3)}, got, approx)

	got, err = transform.Model{Kind: transform.KindPowerLaw, Scale: 3, Shape: 2}.Evaluate(q)
	require.NoError(t, err)
	diff(t, []float64{3e4, 300, 3}, got, approx)

	bad := []transform.Model{
		{Kind: transform.KindGuinier, Scale: 1, Shape: 0},
		{Kind: transform.KindGuinier, Scale: 1, Shape: -1},
		{Kind: transform.KindPowerLaw, Scale: 1, Shape: 0},
		{Kind: transform.KindPowerLaw, Scale: 0, Shape: 4},
	}
	for _, m := range bad {
		_, err = m.Evaluate(q)
		require.ErrorIs(t, err, transform.ErrBadShape, "%+v", m)
		_, err = m.EvaluateErrors(q)
		assert.ErrorIs(t, err, transform.ErrBadShape, "%+v", m)
	}
	_, err = transform.Model{Kind: transform.Kind(5), Shape: 1}.Evaluate(q)
	assert.ErrorIs(t, err, transform.ErrUnknownKind)
}

// TestModel_EvaluateErrors compares the propagated uncertainty with a central
// finite difference of the forward model.
func TestModel_EvaluateErrors(t *testing.T) {
	const h = 1e-6
	q := []float64{0.005, 0.02, 0.08}

	for _, base := range []transform.Model{
		{Kind: transform.KindGuinier, Scale: 1.5, Shape: 30},
		{Kind: transform.KindPowerLaw, Scale: 1.5, Shape: 3},
	} {
		shapeOnly := base
		shapeOnly.DShape = 0.2
		got, err := shapeOnly.EvaluateErrors(q)
		require.NoError(t, err)

		plus, minus := base, base
		plus.Shape += h
		minus.Shape -= h
		ip, err := plus.Evaluate(q)
		require.NoError(t, err)
		im, err := minus.Evaluate(q)
		require.NoError(t, err)
		for i := range q {
			want := math.Abs((ip[i]-im[i])/(2*h)) * 0.2
			assert.InEpsilon(t, want, got[i], 1e-5, "%v q=%g", base.Kind, q[i])
		}

		scaleOnly := base
		scaleOnly.DScale = 0.1
		got, err = scaleOnly.EvaluateErrors(q)
		require.NoError(t, err)
		iq, err := base.Evaluate(q)
		require.NoError(t, err)
		for i := range q {
			assert.InEpsilon(t, iq[i]/base.Scale*0.1, got[i], 1e-12)
		}
	}
}

// TestRoundTrip fits synthetic model data in linear space with an
// independent weighted regression and recovers the model parameters.
func TestRoundTrip(t *testing.T) {
	x := grid(1e-4, 1e-4, 1000)

	cases := []struct {
		name  string
		model transform.Model
		tr    transform.Transform
		sub   func(n int) (int, int)
	}{
		{"guinier low-q", transform.Model{Kind: transform.KindGuinier, Scale: 1.5, Shape: 30}, transform.Guinier{}, func(int) (int, int) { return 0, 20 }},
		{"power law high-q", transform.Model{Kind: transform.KindPowerLaw, Scale: 1.5, Shape: 3}, transform.PowerLaw{}, func(n int) (int, int) { return n - 20, n }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			y, err := tc.model.Evaluate(x)
			require.NoError(t, err)
			dy := make([]float64, len(y))
			for i := range y {
				dy[i] = 0.1 * y[i]
			}
			c, err := curve.New(x, y, curve.WithDY(dy))
			require.NoError(t, err)

			lin, err := transform.Linearize(tc.tr, c)
			require.NoError(t, err)
			require.Equal(t, len(x), lin.Len())
			diff(t, dy[:1], []float64{lin.DY()[0] * y[0]}, cmpopts.EquateApprox(1e-12, 0))

			lo, hi := tc.sub(lin.Len())
			w := make([]float64, hi-lo)
			for i := range w {
				s := lin.DY()[lo+i]
				w[i] = 1 / (s * s)
			}
			intercept, slope := stat.LinearRegression(lin.X()[lo:hi], lin.Y()[lo:hi], w, false)

			m, err := tc.tr.ToPhysical(transform.Line{Slope: slope, Intercept: intercept, Points: hi - lo})
			require.NoError(t, err)
			assert.InEpsilon(t, tc.model.Scale, m.Scale, 1e-6)
			assert.InEpsilon(t, tc.model.Shape, m.Shape, 1e-6)
		})
	}
}

func TestLinearize(t *testing.T) {
	x := []float64{-0.1, 0.1, 0.2, 0.3}
	y := []float64{5, 0, 4, 2}
	dy := []float64{1, 1, 0, 0.5}

	t.Run("drops and weights", func(t *testing.T) {
		c, err := curve.New(x, y, curve.WithDY(dy))
		require.NoError(t, err)
		lin, err := transform.Linearize(transform.PowerLaw{}, c)
		require.NoError(t, err)
		approx := cmpopts.EquateApprox(1e-15, 0)
		diff(t, []float64{math.Log(0.2), math.Log(0.3)}, lin.X(), approx)
		diff(t, []float64{math.Log(4), math.Log(2)}, lin.Y(), approx)
		diff(t, []float64{1, 0.25}, lin.DY(), approx)
		assert.Equal(t, curve.Unsmeared, lin.Kind())
	})

	t.Run("slit widths broadcast from first retained point", func(t *testing.T) {
		dxl := []float64{0.05, 0.05, 0.1, 0.2}
		dxw := []float64{0.01, 0.01, 0.02, 0.04}
		c, err := curve.New(x, y, curve.WithSlit(dxl, dxw))
		require.NoError(t, err)
		lin, err := transform.Linearize(transform.Guinier{}, c)
		require.NoError(t, err)
		require.True(t, lin.IsSlitSmeared())
		wl := transform.Guinier{}.LinearizeWidth(0.2, 0.1)
		ww := transform.Guinier{}.LinearizeWidth(0.2, 0.02)
		diff(t, []float64{wl, wl}, lin.DXL())
		diff(t, []float64{ww, ww}, lin.DXW())
		diff(t, []float64{1, 1}, lin.DY())
	})

	t.Run("pinhole", func(t *testing.T) {
		c, err := curve.New(x, y, curve.WithDX([]float64{0.01, 0.01, 0.01, 0.01}))
		require.NoError(t, err)
		lin, err := transform.Linearize(transform.PowerLaw{}, c)
		require.NoError(t, err)
		assert.Equal(t, curve.PinholeSmeared, lin.Kind())
		w := transform.PowerLaw{}.LinearizeWidth(x[2], 0.01)
		diff(t, []float64{w, w}, lin.DX())
	})

	t.Run("nothing retained", func(t *testing.T) {
		c, err := curve.New([]float64{0, -1}, []float64{1, 1})
		require.NoError(t, err)
		lin, err := transform.Linearize(transform.Guinier{}, c)
		require.NoError(t, err)
		assert.Equal(t, 0, lin.Len())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := transform.Linearize(transform.Guinier{}, nil)
		assert.ErrorIs(t, err, curve.ErrNotCurve)
		_, err = transform.Linearize(nil, nil)
		assert.ErrorIs(t, err, transform.ErrUnknownKind)
	})
}
