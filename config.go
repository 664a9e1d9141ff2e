package sketch

import "github.com/gogpu/sketch/surface"

// ClipRect is a clip rectangle in logical units. A zero W or H means the
// full surface extent on that axis.
type ClipRect struct {
	X, Y, W, H float64
}

// IsZero reports whether the rectangle requests no clip.
func (r ClipRect) IsZero() bool { return r.W == 0 && r.H == 0 }

// DrawConfig is the drawing state the surface does not keep: paint
// toggles, shape building and anchor modes, and the clip override.
type DrawConfig struct {
	Fill   bool // paint fills
	Stroke bool // paint outlines

	// Shape is set between BeginShape and the first vertex.
	Shape bool

	EllipseMode EllipseMode
	RectMode    RectMode
	ImageMode   ImageMode

	Clip ClipRect

	// clipLayer is set when a surface save level holds Clip at the
	// current push level.
	clipLayer bool

	// style is the native style at the Push that stacked this config.
	style surface.Style
}

func defaultConfig() DrawConfig {
	return DrawConfig{
		Fill:        true,
		Stroke:      true,
		EllipseMode: EllipseCenter,
		RectMode:    RectCorner,
		ImageMode:   ImageCorner,
	}
}
