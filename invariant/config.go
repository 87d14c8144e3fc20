// SPDX-License-Identifier: MIT
// Package invariant: YAML configuration.
//
// Example document:
//
//	background: 0.01
//	scale: 1
//	q_min: 1.0e-5
//	q_max: 10
//	steps: 1000
//	low:
//	  points: 10
//	  function: guinier
//	high:
//	  points: 20
//	  function: power_law
//	  power: 4

package invariant

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/qstar/curve"
	"github.com/katalvlaran/qstar/transform"
	"gopkg.in/yaml.v3"
)

// RangeConfig is the YAML form of Settings.
type RangeConfig struct {
	Points   int            `yaml:"points"`
	Function transform.Kind `yaml:"function"`
	Power    *float64       `yaml:"power,omitempty"`
}

// Config is the YAML form of a Calculator setup. Absent keys keep the
// values of DefaultConfig.
type Config struct {
	Background float64     `yaml:"background"`
	Scale      float64     `yaml:"scale"`
	QMin       float64     `yaml:"q_min"`
	QMax       float64     `yaml:"q_max"`
	Steps      int         `yaml:"steps"`
	Low        RangeConfig `yaml:"low"`
	High       RangeConfig `yaml:"high"`
}

// DefaultConfig mirrors the defaults of New.
func DefaultConfig() Config {
	return Config{
		Scale: 1,
		QMin:  DefaultQMin,
		QMax:  DefaultQMax,
		Steps: DefaultSteps,
		Low:   RangeConfig{Points: DefaultPoints, Function: transform.KindGuinier},
		High:  RangeConfig{Points: DefaultPoints, Function: transform.KindPowerLaw},
	}
}

// ParseConfig decodes a YAML document over DefaultConfig.
func ParseConfig(b []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(b))
}

// LoadConfig decodes a YAML document from r over DefaultConfig. Unknown keys
// are rejected; an empty document yields DefaultConfig.
//
// Errors: ErrBadConfig wrapping the decoder error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w: %w", ErrBadConfig, err)
	}

	return cfg, nil
}

// Options converts the scalar part of cfg into calculator options.
func (cfg Config) Options() []Option {
	return []Option{
		WithBackground(cfg.Background),
		WithScale(cfg.Scale),
		WithQRange(cfg.QMin, cfg.QMax),
		WithSteps(cfg.Steps),
	}
}

// Settings returns the extrapolation settings of r.
func (rc RangeConfig) Settings() Settings {
	s := Settings{Points: rc.Points, Function: rc.Function}
	if rc.Power != nil {
		p := *rc.Power
		s.Power = &p
	}

	return s
}

// NewFromConfig builds a Calculator from cfg; extra options (logger,
// smearing) are applied after the configured ones.
//
// Errors: those of New and SetExtrapolation.
func NewFromConfig(d curve.Data, cfg Config, extra ...Option) (*Calculator, error) {
	c, err := New(d, append(cfg.Options(), extra...)...)
	if err != nil {
		return nil, err
	}
	if err = c.SetExtrapolation(LowQ, cfg.Low.Settings()); err != nil {
		return nil, wrap("NewFromConfig", err)
	}
	if err = c.SetExtrapolation(HighQ, cfg.High.Settings()); err != nil {
		return nil, wrap("NewFromConfig", err)
	}

	return c, nil
}
