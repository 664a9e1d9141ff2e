// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/gg"

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	contextOptions []gg.ContextOption
	fonts          *FontRegistry
}

func defaultOptions() options {
	return options{fonts: DefaultFonts()}
}

// WithContextOptions passes options through to gg.NewContext, for example
// a custom renderer or pixmap.
func WithContextOptions(opts ...gg.ContextOption) Option {
	return func(o *options) {
		o.contextOptions = append(o.contextOptions, opts...)
	}
}

// WithFonts resolves font families through r instead of the default
// registry.
func WithFonts(r *FontRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.fonts = r
		}
	}
}
