// SPDX-License-Identifier: MIT
// Package invariant: extrapolation fits and synthetic tails.

package invariant

import (
	"fmt"

	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/extrapolate"
	"github.com/katalvlaran/qstar/transform"
)

// ExtraDataLow returns the synthetic low-Q tail integrated by Low and Both:
// Steps points on [qlow, Q₀] with qlow = QMin, or Q₀/10 when QMin ≥ Q₀.
func (c *Calculator) ExtraDataLow() (*curve.Curve, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tail, err := c.extraDataLow()

	return tail, wrap("ExtraDataLow", err)
}

// ExtraDataHigh returns the synthetic high-Q tail integrated by High and
// Both: Steps points on [Qₙ, QMax]. It is nil when Qₙ ≥ QMax.
func (c *Calculator) ExtraDataHigh() (*curve.Curve, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tail, err := c.extraDataHigh()

	return tail, wrap("ExtraDataHigh", err)
}

func (c *Calculator) extraDataLow() (*curve.Curve, error) {
	m, err := c.fit(LowQ)
	if err != nil {
		return nil, err
	}
	q0 := c.corrected.X()[0]

	return c.synthesize(m, curve.Linspace(c.lowLimit(), q0, c.opts.steps), 0)
}

// lowLimit is the start of the low-Q tail: QMin, or Q₀/10 when QMin ≥ Q₀.
func (c *Calculator) lowLimit() float64 {
	q0 := c.corrected.X()[0]
	if c.opts.qmin >= q0 {
		return q0 / 10
	}

	return c.opts.qmin
}

func (c *Calculator) extraDataHigh() (*curve.Curve, error) {
	x := c.corrected.X()
	if len(x) == 0 {
		return nil, fmt.Errorf("%d point(s): %w", len(x), curve.ErrTooFewPoints)
	}
	qn := x[len(x)-1]
	if qn >= c.opts.qmax {
		return nil, nil
	}
	m, err := c.fit(HighQ)
	if err != nil {
		return nil, err
	}

	return c.synthesize(m, curve.Linspace(qn, c.opts.qmax, c.opts.steps), len(x)-1)
}

// DisplayCurve returns an extrapolated curve for plotting r: npts points
// spanning the extrapolated region and overlapping the fitted data points.
// Low runs from the low-Q limit to the last fitted point; high runs
// from the first fitted point to QMax. The result is nil when the span is
// empty. npts < 2 selects DefaultDisplayPoints.
func (c *Calculator) DisplayCurve(r Range, npts int) (*curve.Curve, error) {
	if !r.valid() {
		return nil, wrap("DisplayCurve", fmt.Errorf("%v: %w", r, ErrUnknownRange))
	}
	if npts < 2 {
		npts = DefaultDisplayPoints
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := c.fit(r)
	if err != nil {
		return nil, wrap("DisplayCurve", err)
	}

	x := c.corrected.X()
	points := c.settings[r].Points
	var start, end float64
	boundary := 0
	if r == LowQ {
		start, end = c.lowLimit(), x[points-1]
	} else {
		start, end = x[len(x)-points], c.opts.qmax
		boundary = len(x) - 1
	}
	if start >= end {
		return nil, nil
	}

	out, err := c.synthesize(m, curve.Linspace(start, end, npts), boundary)

	return out, wrap("DisplayCurve", err)
}

// ExtrapolationModel returns the model last fitted for r; ok is false until
// a fit for r has run since the last SetExtrapolation.
func (c *Calculator) ExtrapolationModel(r Range) (transform.Model, bool) {
	if !r.valid() {
		return transform.Model{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	f := c.fits[r]

	return f.model, f.ok
}

// ExtrapolationPower returns the power-law exponent of r: the fixed power
// when one is set, otherwise the last fitted one. ok is false for Guinier
// ranges and for power-law ranges not fitted yet.
func (c *Calculator) ExtrapolationPower(r Range) (float64, bool) {
	if !r.valid() {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.settings[r]
	if s.Function != transform.KindPowerLaw {
		return 0, false
	}
	if s.Power != nil {
		return *s.Power, true
	}
	f := c.fits[r]

	return f.model.Shape, f.ok
}

// fit runs the extrapolation fit of r in linear space and records the model.
func (c *Calculator) fit(r Range) (transform.Model, error) {
	s := c.settings[r]
	x := c.corrected.X()
	n := len(x)
	if s.Points > n {
		return transform.Model{}, fmt.Errorf("%v range wants %d of %d point(s): %w", r, s.Points, n, ErrBadPoints)
	}
	qmin, qmax := x[0], x[s.Points-1]
	if r == HighQ {
		qmin, qmax = x[n-s.Points], x[n-1]
	}

	t, err := transform.For(s.Function)
	if err != nil {
		return transform.Model{}, err
	}
	lin, err := transform.Linearize(t, c.corrected)
	if err != nil {
		return transform.Model{}, err
	}

	var opts []extrapolate.Option
	if c.opts.smearing != nil {
		sm, err := c.opts.smearing(lin)
		if err != nil {
			return transform.Model{}, fmt.Errorf("%v range smearer: %w", r, err)
		}
		if sm != nil {
			opts = append(opts, extrapolate.WithSmearer(sm))
		}
	}
	ex, err := extrapolate.New(lin, opts...)
	if err != nil {
		return transform.Model{}, err
	}

	var slope *float64
	if s.Power != nil {
		a := -*s.Power
		slope = &a
	}
	line, err := ex.Fit(t.LinearizeQ(qmin), t.LinearizeQ(qmax), slope)
	if err != nil {
		return transform.Model{}, fmt.Errorf("%v range: %w", r, err)
	}
	m, err := t.ToPhysical(line)
	if err != nil {
		return transform.Model{}, fmt.Errorf("%v range: %w", r, err)
	}

	c.fits[r] = fitted{model: m, ok: true}
	c.log.Debug("extrapolation fit",
		"range", r, "function", s.Function, "points", line.Points,
		"slope", line.Slope, "intercept", line.Intercept,
		"scale", m.Scale, "shape", m.Shape)

	return m, nil
}

// synthesize evaluates m on q. Slit half-widths of a slit-smeared source are
// held at their value at index boundary.
func (c *Calculator) synthesize(m transform.Model, q []float64, boundary int) (*curve.Curve, error) {
	iq, err := m.Evaluate(q)
	if err != nil {
		return nil, err
	}
	diq, err := m.EvaluateErrors(q)
	if err != nil {
		return nil, err
	}

	opts := []curve.Option{curve.WithDY(diq)}
	if c.corrected.IsSlitSmeared() {
		opts = append(opts, curve.WithSlit(
			constant(c.corrected.DXL()[boundary], len(q)),
			constant(c.corrected.DXW()[boundary], len(q)),
		))
	}
	c.log.Debug("synthetic curve", "function", m.Kind, "points", len(q), "from", q[0], "to", q[len(q)-1])

	return curve.New(q, iq, opts...)
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}
