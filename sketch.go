package sketch

import (
	"math"

	"github.com/gogpu/sketch/surface"
)

// Mapper converts logical coordinates to device coordinates.
type Mapper func(x, y float64) (float64, float64)

// Sketch is a Processing-style drawing facade over a surface.Surface.
//
// Positions pass through the coordinate mapper and lengths are multiplied
// by the scale factor. Sketch is NOT thread-safe; it owns its surface and
// should be used from a single goroutine.
type Sketch struct {
	surf   surface.Surface
	scale  float64
	mapper Mapper
	loader ImageLoader

	cfg   DrawConfig
	stack []DrawConfig
}

// New wraps s and applies the defaults.
//
// Example:
//
//	s, _ := raster.New(800, 600)
//	sk := sketch.New(s)
//	sk.Background(sketch.Gray(30))
//	sk.Fill(sketch.Hex("#f80"))
//	sk.Circle(400, 300, 120)
func New(s surface.Surface, opts ...Option) *Sketch {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sk := &Sketch{
		surf:   s,
		scale:  o.scale,
		loader: o.loader,
	}
	sk.mapper = o.mapper
	if sk.mapper == nil {
		sk.mapper = sk.defaultMap
	}
	sk.SetDefaults()
	return sk
}

// defaultMap scales and resolves negative coordinates against the far
// edge of the surface.
func (s *Sketch) defaultMap(x, y float64) (float64, float64) {
	w, h := s.surf.Size()
	x *= s.scale
	y *= s.scale
	if x < 0 {
		x += float64(w)
	}
	if y < 0 {
		y += float64(h)
	}
	return x, y
}

// Map applies the coordinate mapper.
func (s *Sketch) Map(x, y float64) (float64, float64) { return s.mapper(x, y) }

// Surface returns the wrapped surface.
func (s *Sketch) Surface() surface.Surface { return s.surf }

// Config returns a copy of the drawing state.
func (s *Sketch) Config() DrawConfig { return s.cfg }

// Depth returns the number of unmatched Push calls.
func (s *Sketch) Depth() int { return len(s.stack) }

// SetDefaults restores the default native style and drawing state. A clip
// opened at the current push level is released first.
func (s *Sketch) SetDefaults() {
	if s.cfg.clipLayer {
		s.surf.Restore()
	}
	s.surf.SetFillStyle(Named("white").CSS())
	s.surf.SetStrokeStyle(Named("black").CSS())
	s.surf.SetLineWidth(s.scale)
	s.surf.SetLineCap(surface.LineCapRound)
	s.surf.SetLineJoin(surface.LineJoinMiter)
	s.surf.SetTextBaseline(surface.TextBaselineAlphabetic)
	s.surf.SetTextAlign(surface.TextAlignLeft)
	s.surf.SetFont(surface.Font{Size: math.Round(20 * s.scale), Family: "sans-serif"})
	s.cfg = defaultConfig()
}

// Size resizes the surface to width x height logical units. The style is
// carried across the resize, and each push level is rebuilt with its clip
// and the style it saved, so Pop still restores the pre-Push style.
func (s *Sketch) Size(width, height int) error {
	st := s.surf.Style()
	w := int(math.Round(float64(width) * s.scale))
	h := int(math.Round(float64(height) * s.scale))
	if err := s.surf.Resize(w, h); err != nil {
		return err
	}

	for _, c := range s.stack {
		if c.clipLayer {
			s.openClip(c.Clip)
		}
		surface.ApplyStyle(s.surf, c.style)
		s.surf.Save()
	}
	if s.cfg.clipLayer {
		s.openClip(s.cfg.Clip)
	}
	surface.ApplyStyle(s.surf, st)
	return nil
}

// Width returns the logical width.
func (s *Sketch) Width() int {
	w, _ := s.surf.Size()
	return int(math.Round(float64(w) / s.scale))
}

// Height returns the logical height.
func (s *Sketch) Height() int {
	_, h := s.surf.Size()
	return int(math.Round(float64(h) / s.scale))
}

// Scale returns the device scale factor.
func (s *Sketch) Scale() float64 { return s.scale }

// Clear makes the whole surface transparent.
func (s *Sketch) Clear() {
	w, h := s.surf.Size()
	s.surf.ClearRect(0, 0, float64(w), float64(h))
}

// Background paints the visible area with c. The fill color is kept.
func (s *Sketch) Background(c Color) {
	prev := s.surf.Style().FillStyle
	w, h := s.surf.Size()
	s.surf.SetFillStyle(c.CSS())
	s.surf.FillRect(0, 0, float64(w), float64(h))
	s.surf.SetFillStyle(prev)
}

// Fill enables filling with c.
func (s *Sketch) Fill(c Color) {
	s.cfg.Fill = true
	s.surf.SetFillStyle(c.CSS())
}

// NoFill disables filling.
func (s *Sketch) NoFill() { s.cfg.Fill = false }

// Stroke enables outlining with c.
func (s *Sketch) Stroke(c Color) {
	s.cfg.Stroke = true
	s.surf.SetStrokeStyle(c.CSS())
}

// NoStroke disables outlining.
func (s *Sketch) NoStroke() { s.cfg.Stroke = false }

// StrokeWeight sets the line width in logical units.
func (s *Sketch) StrokeWeight(px float64) {
	s.surf.SetLineWidth(px * s.scale)
}

// StrokeCap sets the line cap. Unknown values give CapRound.
func (s *Sketch) StrokeCap(c StrokeCap) {
	v, ok := native(strokeCapNative[:], int(c), int(CapRound))
	if !ok {
		Logger().Debug("sketch: unknown stroke cap", "value", int(c))
	}
	s.surf.SetLineCap(v)
}

// StrokeJoin sets the line join. Unknown values give JoinMiter.
func (s *Sketch) StrokeJoin(j StrokeJoin) {
	v, ok := native(strokeJoinNative[:], int(j), int(JoinMiter))
	if !ok {
		Logger().Debug("sketch: unknown stroke join", "value", int(j))
	}
	s.surf.SetLineJoin(v)
}

// RectMode sets how Rect interprets its arguments. Unknown values give
// RectCenter.
func (s *Sketch) RectMode(m RectMode) {
	if !m.valid() {
		Logger().Debug("sketch: unknown rect mode", "value", int(m))
		m = RectCenter
	}
	s.cfg.RectMode = m
}

// EllipseMode sets how Ellipse interprets its arguments. Unknown values
// give EllipseCenter.
func (s *Sketch) EllipseMode(m EllipseMode) {
	if !m.valid() {
		Logger().Debug("sketch: unknown ellipse mode", "value", int(m))
		m = EllipseCenter
	}
	s.cfg.EllipseMode = m
}

// ImageMode sets how Image interprets its arguments. Unknown values give
// ImageCenter.
func (s *Sketch) ImageMode(m ImageMode) {
	if !m.valid() {
		Logger().Debug("sketch: unknown image mode", "value", int(m))
		m = ImageCenter
	}
	s.cfg.ImageMode = m
}

// Rotate rotates subsequent drawing by rad radians.
func (s *Sketch) Rotate(rad float64) { s.surf.Rotate(rad) }

// Translate moves the origin to the mapped point (x, y).
func (s *Sketch) Translate(x, y float64) {
	s.surf.Translate(s.mapper(x, y))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
