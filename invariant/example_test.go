// SPDX-License-Identifier: MIT

package invariant_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/invariant"
	"github.com/lmittmann/tint"
)

// ExampleCalculator reduces a curve with a flat Q²·I(Q) to its invariant,
// volume fraction and specific surface.
func ExampleCalculator() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))

	q := curve.Linspace(0.01, 0.11, 101)
	iq := make([]float64, len(q))
	for i, v := range q {
		iq[i] = 7.48959e-4 / (v * v)
	}
	data, err := curve.New(q, iq)
	if err != nil {
		fmt.Println(err)
		return
	}

	calc, err := invariant.New(data, invariant.WithLogger(logger))
	if err != nil {
		fmt.Println(err)
		return
	}
	qs, _ := calc.QStar(invariant.NoExtrapolation)
	v, _ := calc.VolumeFraction(2.6e-6, invariant.NoExtrapolation)
	s, _ := calc.Surface(2.6e-6, 2, invariant.NoExtrapolation)

	fmt.Printf("Q* = %.5e\n", qs)
	fmt.Printf("V  = %.6f\n", v)
	fmt.Printf("S  = %.1f\n", s)
	// Output:
	// Q* = 7.48959e-05
	// V  = 0.005645
	// S  = 941.7
}

// ExampleNewFromConfig configures the extrapolation from YAML.
func ExampleNewFromConfig() {
	cfg, err := invariant.ParseConfig([]byte(`
high:
  points: 8
  function: power_law
  power: 4
`))
	if err != nil {
		fmt.Println(err)
		return
	}

	q := curve.Linspace(0.01, 0.2, 50)
	iq := make([]float64, len(q))
	for i, v := range q {
		iq[i] = 1e-6 / (v * v * v * v)
	}
	data, _ := curve.New(q, iq)

	calc, err := invariant.NewFromConfig(data, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	p, ok := calc.ExtrapolationPower(invariant.HighQ)
	fmt.Println(p, ok)
	low, _ := calc.Extrapolation(invariant.LowQ)
	fmt.Println(low.Points, low.Function)
	// Output:
	// 4 true
	// 4 guinier
}
