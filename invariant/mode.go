// SPDX-License-Identifier: MIT
// Package invariant: extrapolation modes and ranges.

package invariant

import (
	"fmt"
	"strings"
)

// Mode selects which extrapolated tails are added to the measured invariant.
type Mode int

const (
	// NoExtrapolation integrates the measured range only.
	NoExtrapolation Mode = iota
	// Low adds the low-Q tail.
	Low
	// High adds the high-Q tail.
	High
	// Both adds both tails.
	Both
)

// String implements fmt.Stringer; the result round-trips through ParseMode.
func (m Mode) String() string {
	switch m {
	case NoExtrapolation:
		return "none"
	case Low:
		return "low"
	case High:
		return "high"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "none" (or ""), "low", "high" and "both", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoExtrapolation, nil
	case "low":
		return Low, nil
	case "high":
		return High, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

func (m Mode) valid() bool { return m >= NoExtrapolation && m <= Both }

func (m Mode) low() bool { return m == Low || m == Both }

func (m Mode) high() bool { return m == High || m == Both }

// Range names one end of the measured Q range.
type Range int

const (
	// LowQ is the low-Q end.
	LowQ Range = iota
	// HighQ is the high-Q end.
	HighQ
)

// String implements fmt.Stringer.
func (r Range) String() string {
	switch r {
	case LowQ:
		return "low"
	case HighQ:
		return "high"
	default:
		return fmt.Sprintf("Range(%d)", int(r))
	}
}

// ParseRange accepts "low" and "high", case-insensitive.
func ParseRange(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return LowQ, nil
	case "high":
		return HighQ, nil
	default:
		return 0, fmt.Errorf("ParseRange(%q): %w", s, ErrUnknownRange)
	}
}

func (r Range) valid() bool { return r == LowQ || r == HighQ }
