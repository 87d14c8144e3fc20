// SPDX-License-Identifier: MIT
// Package extrapolate: functional options.

package extrapolate

import "github.com/katalvlaran/qstar/curve"

// Options holds the Extrapolator configuration. The zero value fits raw data.
type Options struct {
	smearer curve.Smearer
}

// Option mutates Options.
type Option func(o *Options)

// WithSmearer smears the data with s before every fit. A nil s is ignored.
func WithSmearer(s curve.Smearer) Option {
	return func(o *Options) { o.smearer = s }
}

func defaultOptions() Options {
	return Options{}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
