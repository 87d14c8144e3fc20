// SPDX-License-Identifier: MIT
// Package transform: Kind, the Transform interface and fitted lines.

package transform

import (
	"fmt"
	"strings"
)

// Kind names a linearizing transform.
type Kind int

const (
	// KindGuinier selects the Guinier transform.
	KindGuinier Kind = iota
	// KindPowerLaw selects the power-law transform.
	KindPowerLaw
)

// String implements fmt.Stringer; the result round-trips through ParseKind.
func (k Kind) String() string {
	switch k {
	case KindGuinier:
		return "guinier"
	case KindPowerLaw:
		return "power_law"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts "guinier", "power_law" and "powerlaw" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "guinier":
		return KindGuinier, nil
	case "power_law", "powerlaw", "power-law":
		return KindPowerLaw, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, err := For(k); err != nil {
		return nil, err
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// Line is a weighted straight-line fit v = Slope·u + Intercept in linear
// space, with one-sigma parameter uncertainties and the number of points
// that entered the fit.
type Line struct {
	Slope      float64
	Intercept  float64
	DSlope     float64
	DIntercept float64
	Points     int
}

// Transform is the closed set of linearizing transforms.
// Implementations are Guinier and PowerLaw.
type Transform interface {
	// Kind identifies the transform.
	Kind() Kind
	// LinearizeQ maps a physical Q to linear-space u.
	LinearizeQ(q float64) float64
	// LinearizePoint maps (Q, I) to (u, v); ok is false when the point has
	// no image (Q ≤ 0 or I ≤ 0).
	LinearizePoint(q, i float64) (u, v float64, ok bool)
	// LinearizeWidth maps a Q half-width dq at q to a u half-width.
	LinearizeWidth(q, dq float64) float64
	// ToPhysical converts a fitted line into model parameters.
	ToPhysical(fit Line) (Model, error)
	// ValidShape reports whether shape is inside the model domain.
	ValidShape(shape float64) bool

	sealed()
}

// For returns the transform registered for k.
func For(k Kind) (Transform, error) {
	switch k {
	case KindGuinier:
		return Guinier{}, nil
	case KindPowerLaw:
		return PowerLaw{}, nil
	default:
		return nil, fmt.Errorf("For(%v): %w", k, ErrUnknownKind)
	}
}
