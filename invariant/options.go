// SPDX-License-Identifier: MIT
// Package invariant: functional configuration for Calculator.
//
// Q limits and integration steps are per-calculator options; the package
// holds no mutable state.

package invariant

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/qstar/curve"
)

// ---------- Defaults ----------

const (
	// DefaultQMin is the lowest Q reached by the low-Q extrapolation.
	DefaultQMin = 1e-5
	// DefaultQMax is the highest Q reached by the high-Q extrapolation.
	DefaultQMax = 10.0
	// DefaultSteps is the number of points of each synthetic tail.
	DefaultSteps = 1000
	// DefaultPoints is the number of data points used by each extrapolation fit.
	DefaultPoints = 4
	// DefaultDisplayPoints is the number of points DisplayCurve uses when
	// asked for fewer than two.
	DefaultDisplayPoints = 20
)

// SmearerFactory builds a Smearer for one extrapolation fit from the
// linear-space curve being fitted. Returning a nil Smearer fits raw data.
type SmearerFactory func(linear curve.Data) (curve.Smearer, error)

// Options holds the Calculator configuration.
type Options struct {
	background float64
	scale      float64
	qmin       float64
	qmax       float64
	steps      int
	logger     *slog.Logger
	smearing   SmearerFactory
}

// Option mutates Options.
type Option func(o *Options)

// WithBackground sets the constant background subtracted from I(Q). Default 0.
func WithBackground(b float64) Option {
	return func(o *Options) { o.background = b }
}

// WithScale sets the factor applied to I(Q) before the background. Default 1.
func WithScale(s float64) Option {
	return func(o *Options) { o.scale = s }
}

// WithQRange sets the Q limits of the extrapolated tails.
// Defaults DefaultQMin and DefaultQMax.
func WithQRange(qmin, qmax float64) Option {
	return func(o *Options) {
		o.qmin = qmin
		o.qmax = qmax
	}
}

// WithSteps sets the number of points per synthetic tail. Default DefaultSteps.
func WithSteps(n int) Option {
	return func(o *Options) { o.steps = n }
}

// WithLogger sets the structured logger. nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSmearing makes every extrapolation fit smear the data with a Smearer
// built by f. nil disables smearing.
func WithSmearing(f SmearerFactory) Option {
	return func(o *Options) { o.smearing = f }
}

func defaultOptions() Options {
	return Options{
		scale:  1,
		qmin:   DefaultQMin,
		qmax:   DefaultQMax,
		steps:  DefaultSteps,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch {
	case !finite(o.background) || !finite(o.scale):
		return o, fmt.Errorf("background %g, scale %g: %w", o.background, o.scale, ErrBadOption)
	case !finite(o.qmin) || !finite(o.qmax) || o.qmin < 0 || o.qmin >= o.qmax:
		return o, fmt.Errorf("q range [%g, %g]: %w", o.qmin, o.qmax, ErrBadOption)
	case o.steps < 2:
		return o, fmt.Errorf("steps %d: %w", o.steps, ErrBadOption)
	}

	return o, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
