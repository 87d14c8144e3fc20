// SPDX-License-Identifier: MIT

package curve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// plain is a Data implementation that is not a *Curve, used to exercise the
// uncached classification path.
type plain struct {
	x, y, dx, dy, dxl, dxw []float64
}

func (p plain) X() []float64   { return p.x }
func (p plain) Y() []float64   { return p.y }
func (p plain) DX() []float64  { return p.dx }
func (p plain) DY() []float64  { return p.dy }
func (p plain) DXL() []float64 { return p.dxl }
func (p plain) DXW() []float64 { return p.dxw }
