// SPDX-License-Identifier: MIT
// Package invariant: Calculator state and the Q* entry points.

package invariant

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/transform"
	"github.com/patrickmn/go-cache"
)

// Settings configures the extrapolation fit of one Range.
type Settings struct {
	// Points is the number of data points at the range end used by the fit.
	Points int
	// Function is the linearizing transform; HighQ accepts only KindPowerLaw.
	Function transform.Kind
	// Power, when set, fixes the power-law exponent instead of fitting it.
	Power *float64
}

// qstarResult is one memoized (Q*, dQ*) pair.
type qstarResult struct {
	q, dq float64
}

// fitted is the last model fitted for a range.
type fitted struct {
	model transform.Model
	ok    bool
}

// Calculator computes the invariant of one corrected curve.
type Calculator struct {
	mu sync.Mutex

	opts      Options
	log       *slog.Logger
	corrected *curve.Curve
	settings  [2]Settings
	fits      [2]fitted

	// memo maps Mode.String() to qstarResult.
	memo *cache.Cache

	integrations int
}

// New builds a Calculator over d, corrected as scale·I − background.
//
// Errors:
//   - curve.ErrNotCurve (and other curve validation errors) for bad data.
//   - ErrBadOption for option values outside their domain.
func New(d curve.Data, opts ...Option) (*Calculator, error) {
	if err := curve.Check(d); err != nil {
		return nil, wrap("invariant.New", err)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, wrap("invariant.New", err)
	}
	corrected, err := curve.Corrected(d, o.scale, o.background)
	if err != nil {
		return nil, wrap("invariant.New", err)
	}

	c := &Calculator{
		opts:      o,
		log:       o.logger,
		corrected: corrected,
		memo:      cache.New(cache.NoExpiration, 0),
	}
	c.settings[LowQ] = Settings{Points: DefaultPoints, Function: transform.KindGuinier}
	c.settings[HighQ] = Settings{Points: DefaultPoints, Function: transform.KindPowerLaw}
	c.log.Debug("calculator ready",
		"points", corrected.Len(), "kind", corrected.Kind(),
		"background", o.background, "scale", o.scale)

	return c, nil
}

// Data returns the background/scale corrected curve the calculator works on.
func (c *Calculator) Data() *curve.Curve { return c.corrected }

// Background returns the subtracted background.
func (c *Calculator) Background() float64 { return c.opts.background }

// Scale returns the intensity scale factor.
func (c *Calculator) Scale() float64 { return c.opts.scale }

// QStar returns the invariant for mode.
func (c *Calculator) QStar(mode Mode) (float64, error) {
	q, _, err := c.QStarWithError(mode)

	return q, err
}

// QStarWithError returns the invariant for mode and its uncertainty
// dQ* = sqrt(dQ₀² + dQ_low² + dQ_high²).
//
// The result is memoized per mode until SetExtrapolation; failures are not
// cached.
//
// Errors:
//   - ErrUnknownMode for an invalid mode.
//   - integration errors (curve.ErrTooFewPoints, ...).
//   - fit errors (ErrBadPoints, extrapolate.ErrTooFewPoints,
//     transform.ErrGuinierSlope, transform.ErrBadShape, ...).
func (c *Calculator) QStarWithError(mode Mode) (float64, float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, err := c.qstar(mode)
	if err != nil {
		return 0, 0, wrap("QStar", err)
	}

	return r.q, r.dq, nil
}

// qstar is QStarWithError without locking.
func (c *Calculator) qstar(mode Mode) (qstarResult, error) {
	if !mode.valid() {
		return qstarResult{}, fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}
	if v, ok := c.memo.Get(mode.String()); ok {
		return v.(qstarResult), nil
	}

	q, dq, err := c.integrate(c.corrected)
	if err != nil {
		return qstarResult{}, err
	}
	total := qstarResult{q: q, dq: dq * dq}

	if mode.low() {
		ql, dql, err := c.qstarLow()
		if err != nil {
			return qstarResult{}, err
		}
		total.q += ql
		total.dq += dql * dql
	}
	if mode.high() {
		qh, dqh, err := c.qstarHigh()
		if err != nil {
			return qstarResult{}, err
		}
		total.q += qh
		total.dq += dqh * dqh
	}
	total.dq = math.Sqrt(total.dq)

	c.memo.Set(mode.String(), total, cache.NoExpiration)
	c.log.Debug("invariant computed", "mode", mode, "qstar", total.q, "dqstar", total.dq)

	return total, nil
}

// qstarLow integrates the low-Q tail and adds the systematic error
// q₀²·|(q₀ − qlow)·(I(qlow) − I(q₀))| to its statistical uncertainty.
func (c *Calculator) qstarLow() (float64, float64, error) {
	tail, err := c.extraDataLow()
	if err != nil {
		return 0, 0, err
	}
	q, dq, err := c.integrate(tail)
	if err != nil {
		return 0, 0, err
	}

	x, y := tail.X(), tail.Y()
	q0, qlow := x[len(x)-1], x[0]
	sys := q0 * q0 * math.Abs((q0-qlow)*(y[0]-y[len(y)-1]))

	return q, dq + sys, nil
}

// qstarHigh integrates the high-Q tail; an absent tail contributes nothing.
func (c *Calculator) qstarHigh() (float64, float64, error) {
	tail, err := c.extraDataHigh()
	if err != nil {
		return 0, 0, err
	}

	return c.integrate(tail)
}

// integrate returns Integrate(d) and Uncertainty(d), counting calls.
func (c *Calculator) integrate(d curve.Data) (float64, float64, error) {
	c.integrations++
	q, err := Integrate(d)
	if err != nil {
		return 0, 0, err
	}
	dq, err := Uncertainty(d)
	if err != nil {
		return 0, 0, err
	}

	return q, dq, nil
}

// Extrapolation returns the current settings of r.
func (c *Calculator) Extrapolation(r Range) (Settings, error) {
	if !r.valid() {
		return Settings{}, wrap("Extrapolation", fmt.Errorf("%v: %w", r, ErrUnknownRange))
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.settings[r]
	if s.Power != nil {
		p := *s.Power
		s.Power = &p
	}

	return s, nil
}

// SetExtrapolation replaces the fit settings of r and invalidates every
// memoized invariant. It does not turn extrapolation on; Mode does.
//
// Errors:
//   - ErrUnknownRange for an invalid r.
//   - transform.ErrUnknownKind for an invalid function.
//   - ErrHighNeedsPowerLaw for a non power-law HighQ function.
//   - ErrBadPoints for Points < 1.
//   - ErrBadPower for a non-positive fixed power, or any fixed power with Guinier.
func (c *Calculator) SetExtrapolation(r Range, s Settings) error {
	if err := validateSettings(r, s); err != nil {
		return wrap("SetExtrapolation", err)
	}
	if s.Power != nil {
		p := *s.Power
		s.Power = &p
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings[r] = s
	c.fits = [2]fitted{}
	c.memo.Flush()
	c.log.Debug("extrapolation set", "range", r, "function", s.Function, "points", s.Points, "fixed_power", s.Power != nil)

	return nil
}

func validateSettings(r Range, s Settings) error {
	if !r.valid() {
		return fmt.Errorf("%v: %w", r, ErrUnknownRange)
	}
	if _, err := transform.For(s.Function); err != nil {
		return err
	}
	if r == HighQ && s.Function != transform.KindPowerLaw {
		return fmt.Errorf("%v: %w", s.Function, ErrHighNeedsPowerLaw)
	}
	if s.Points < 1 {
		return fmt.Errorf("%d: %w", s.Points, ErrBadPoints)
	}
	if s.Power != nil {
		p := *s.Power
		if s.Function != transform.KindPowerLaw || !finite(p) || p <= 0 {
			return fmt.Errorf("%v power %g: %w", s.Function, p, ErrBadPower)
		}
	}

	return nil
}
