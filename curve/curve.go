// SPDX-License-Identifier: MIT
// Package curve: the Data contract and its concrete *Curve implementation.

package curve

import (
	"iter"
	"math"
)

// Data is the read-only capability set the engine needs from a curve.
// X and Y are required; DX, DY, DXL and DXW may be nil (absent).
// Present optional sequences must have len(X) elements.
type Data interface {
	X() []float64
	Y() []float64
	DX() []float64
	DY() []float64
	DXL() []float64
	DXW() []float64
}

// Point is one sample of a curve.
type Point struct {
	Q, I, DI float64
}

// Curve is an immutable validated implementation of Data.
type Curve struct {
	x, y, dx, dy, dxl, dxw []float64
	kind                   Kind
	classified             bool
}

// Option configures optional sequences of a Curve built by New.
type Option func(c *Curve)

// WithDY sets the per-point intensity uncertainty ΔI.
func WithDY(dy []float64) Option {
	return func(c *Curve) { c.dy = dy }
}

// WithDX sets the per-point pinhole Q resolution.
func WithDX(dx []float64) Option {
	return func(c *Curve) { c.dx = dx }
}

// WithSlit sets the slit length and slit width half-widths.
func WithSlit(dxl, dxw []float64) Option {
	return func(c *Curve) {
		c.dxl = dxl
		c.dxw = dxw
	}
}

// New builds a Curve over x and y, applies opts and validates the result
// with Check. The slices are shared, not copied; callers must not mutate
// them afterwards.
//
// Errors:
//   - ErrLengthMismatch if a present sequence differs in length from x.
//   - ErrNotFinite if x, y or dy hold NaN/Inf.
func New(x, y []float64, opts ...Option) (*Curve, error) {
	c := &Curve{x: x, y: y}
	for _, opt := range opts {
		opt(c)
	}
	if err := Check(c); err != nil {
		return nil, err
	}
	c.kind = KindOf(c)
	c.classified = true

	return c, nil
}

// X returns the scattering vectors Q.
func (c *Curve) X() []float64 { return c.x }

// Y returns the intensities I(Q).
func (c *Curve) Y() []float64 { return c.y }

// DX returns the pinhole resolution or nil.
func (c *Curve) DX() []float64 { return c.dx }

// DY returns the intensity uncertainties or nil.
func (c *Curve) DY() []float64 { return c.dy }

// DXL returns the slit length half-widths or nil.
func (c *Curve) DXL() []float64 { return c.dxl }

// DXW returns the slit width half-widths or nil.
func (c *Curve) DXW() []float64 { return c.dxw }

// Len returns the number of points.
func (c *Curve) Len() int { return len(c.x) }

// Kind returns the smearing kind decided when the curve was built.
func (c *Curve) Kind() Kind { return c.kind }

// IsSlitSmeared reports whether the curve is slit smeared.
func (c *Curve) IsSlitSmeared() bool { return c.kind == SlitSmeared }

// At returns point i; DI is 0 when DY is absent.
func (c *Curve) At(i int) Point {
	p := Point{Q: c.x[i], I: c.y[i]}
	if c.dy != nil {
		p.DI = c.dy[i]
	}

	return p
}

// Points iterates over (index, point) pairs in storage order.
func (c *Curve) Points() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range c.x {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// Check validates that d satisfies the curve contract.
//
// Errors:
//   - ErrNotCurve for nil data or a nil *Curve.
//   - ErrLengthMismatch if Y or a present optional sequence differs from X.
//   - ErrNotFinite if X, Y or DY contain NaN/Inf.
//
// Complexity: O(n).
func Check(d Data) error {
	if d == nil {
		return ErrNotCurve
	}
	if c, ok := d.(*Curve); ok && c == nil {
		return ErrNotCurve
	}

	n := len(d.X())
	if len(d.Y()) != n {
		return ErrLengthMismatch
	}
	for _, opt := range [][]float64{d.DX(), d.DY(), d.DXL(), d.DXW()} {
		if opt != nil && len(opt) != n {
			return ErrLengthMismatch
		}
	}
	for _, seq := range [][]float64{d.X(), d.Y(), d.DY()} {
		if !allFinite(seq) {
			return ErrNotFinite
		}
	}

	return nil
}

// present reports whether v is a usable per-point sequence for n points.
func present(v []float64, n int) bool {
	return n > 0 && len(v) == n
}

// HasErrors reports whether d carries a usable ΔI: present and not all zero.
func HasErrors(d Data) bool {
	dy := d.DY()
	if !present(dy, len(d.X())) {
		return false
	}
	for _, v := range dy {
		if v != 0 {
			return true
		}
	}

	return false
}

func allFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}
