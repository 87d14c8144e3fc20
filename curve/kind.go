// SPDX-License-Identifier: MIT
// Package curve: smearing classification.

package curve

import "fmt"

// Kind is the closed set of smearing variants a curve can carry.
type Kind int

const (
	// Unsmeared curves integrate with weight Q².
	Unsmeared Kind = iota
	// PinholeSmeared curves carry a Gaussian Q resolution in DX.
	// The invariant treats them as unsmeared.
	PinholeSmeared
	// SlitSmeared curves carry slit half-widths and integrate with weight Q·dxl.
	SlitSmeared
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Unsmeared:
		return "unsmeared"
	case PinholeSmeared:
		return "pinhole"
	case SlitSmeared:
		return "slit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies d. Slit smearing wins over pinhole smearing:
//   - SlitSmeared iff DXL and DXW are present and DXL[0] > 0;
//   - PinholeSmeared iff DX is present and DX[0] > 0;
//   - Unsmeared otherwise.
//
// A *Curve answers from the kind cached at construction.
func KindOf(d Data) Kind {
	if c, ok := d.(*Curve); ok && c.classified {
		return c.kind
	}

	n := len(d.X())
	if present(d.DXL(), n) && present(d.DXW(), n) && d.DXL()[0] > 0 {
		return SlitSmeared
	}
	if present(d.DX(), n) && d.DX()[0] > 0 {
		return PinholeSmeared
	}

	return Unsmeared
}

// IsSlitSmeared reports whether KindOf(d) is SlitSmeared.
func IsSlitSmeared(d Data) bool {
	return KindOf(d) == SlitSmeared
}
