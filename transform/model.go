// SPDX-License-Identifier: MIT
// Package transform: fitted physical models.

package transform

import "fmt"

// Model is a fitted physical model. Shape is Rg for KindGuinier and the
// power for KindPowerLaw; DScale and DShape are one-sigma uncertainties.
type Model struct {
	Kind   Kind
	Scale  float64
	Shape  float64
	DScale float64
	DShape float64
}

// Validate reports ErrBadShape when the model cannot be evaluated:
// Guinier needs Rg > 0, PowerLaw needs power > 0 and scale > 0.
func (m Model) Validate() error {
	t, err := For(m.Kind)
	if err != nil {
		return err
	}
	if !t.ValidShape(m.Shape) {
		return fmt.Errorf("%v shape %g: %w", m.Kind, m.Shape, ErrBadShape)
	}
	if m.Kind == KindPowerLaw && m.Scale <= 0 {
		return fmt.Errorf("%v scale %g: %w", m.Kind, m.Scale, ErrBadShape)
	}

	return nil
}

// Evaluate returns the model intensity at every q.
//
// Errors: those of Validate.
func (m Model) Evaluate(q []float64) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	f := guinier
	if m.Kind == KindPowerLaw {
		f = powerLaw
	}
	out := make([]float64, len(q))
	for i, v := range q {
		out[i] = f(m.Scale, m.Shape, v)
	}

	return out, nil
}

// EvaluateErrors returns the first-order uncertainty of the model intensity
// at every q, treating DScale and DShape as independent.
//
// Errors: those of Validate.
func (m Model) EvaluateErrors(q []float64) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	f := guinierError
	if m.Kind == KindPowerLaw {
		f = powerLawError
	}
	out := make([]float64, len(q))
	for i, v := range q {
		out[i] = f(m, v)
	}

	return out, nil
}
