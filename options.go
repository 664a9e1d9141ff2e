package sketch

import "github.com/gogpu/sketch/imageio"

// Option configures a Sketch during creation.
//
// Example:
//
//	// Retina-style drawing: one logical unit is two device pixels.
//	sk := sketch.New(s, sketch.WithScale(2))
type Option func(*options)

type options struct {
	scale  float64
	mapper Mapper
	loader ImageLoader
}

func defaultOptions() options {
	return options{
		scale:  1,
		loader: imageio.NewLoader(),
	}
}

// WithScale sets the device scale factor. Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithMapper replaces the coordinate mapper. The mapper receives logical
// coordinates and must return device coordinates, including any scaling.
func WithMapper(m Mapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

// WithImageLoader sets the loader used by LoadImage.
func WithImageLoader(l ImageLoader) Option {
	return func(o *options) {
		if l != nil {
			o.loader = l
		}
	}
}
