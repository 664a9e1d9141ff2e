// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/sketch/internal/csscolor"
	"github.com/gogpu/sketch/internal/logging"
	"github.com/gogpu/sketch/surface"
)

func logger() *slog.Logger { return logging.Logger() }

// rect is an axis-aligned device rectangle.
type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) intersect(o rect) rect {
	r = rect{math.Max(r.x0, o.x0), math.Max(r.y0, o.y0), math.Min(r.x1, o.x1), math.Min(r.y1, o.y1)}
	if r.x1 < r.x0 {
		r.x1 = r.x0
	}
	if r.y1 < r.y0 {
		r.y1 = r.y0
	}
	return r
}

// state is the part of the canvas state gg does not keep on its stack.
type state struct {
	style surface.Style
	fill  gg.RGBA
	strk  gg.RGBA
	clip  rect
}

// Surface is a surface.Surface backed by a gg.Context.
//
// Surface is NOT thread-safe.
type Surface struct {
	ctx   *gg.Context
	fonts *FontRegistry

	cur   state
	stack []state

	// hasPoint reports whether the current path has a current point.
	hasPoint bool
}

var _ surface.Snapshotter = (*Surface)(nil)

// New creates a raster surface of the given device size.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Surface{
		ctx:   gg.NewContext(width, height, o.contextOptions...),
		fonts: o.fonts,
	}
	s.reset()
	return s, nil
}

func init() {
	surface.Register("raster", 10, func(opts surface.Options) (surface.Surface, error) {
		return New(opts.Width, opts.Height)
	}, nil)
}

func (s *Surface) reset() {
	w, h := s.Size()
	s.cur = state{clip: rect{0, 0, float64(w), float64(h)}}
	s.applyStyle(surface.DefaultStyle())
	s.stack = s.stack[:0]
	s.hasPoint = false
}

func (s *Surface) applyStyle(st surface.Style) {
	s.SetFillStyle(st.FillStyle)
	s.SetStrokeStyle(st.StrokeStyle)
	s.cur.style = st
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context { return s.ctx }

// Close releases the context resources.
func (s *Surface) Close() error { return s.ctx.Close() }

// Size returns the device size.
func (s *Surface) Size() (int, int) { return s.ctx.Width(), s.ctx.Height() }

// Resize reallocates the raster, clears it and resets the style, the
// transform, the clip and the save stack.
func (s *Surface) Resize(width, height int) error {
	for range s.stack {
		s.ctx.Pop()
	}
	if err := s.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	s.ctx.Identity()
	s.ctx.ResetClip()
	s.ctx.ClearPath()
	s.ctx.Clear()
	s.reset()
	return nil
}

// Style returns the current style.
func (s *Surface) Style() surface.Style { return s.cur.style }

// SetFillStyle sets the fill color. Unparseable colors are ignored, as a
// canvas ignores an invalid fillStyle assignment.
func (s *Surface) SetFillStyle(css string) {
	c, ok := csscolor.Parse(css)
	if !ok {
		logger().Debug("raster: ignoring fill style", "css", css)
		return
	}
	s.cur.style.FillStyle = css
	s.cur.fill = c
}

// SetStrokeStyle sets the stroke color. Unparseable colors are ignored.
func (s *Surface) SetStrokeStyle(css string) {
	c, ok := csscolor.Parse(css)
	if !ok {
		logger().Debug("raster: ignoring stroke style", "css", css)
		return
	}
	s.cur.style.StrokeStyle = css
	s.cur.strk = c
}

func (s *Surface) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) && !math.IsNaN(width) {
		s.cur.style.LineWidth = width
	}
}

func (s *Surface) SetLineCap(lineCap surface.LineCap) {
	if _, ok := lineCaps[lineCap]; ok {
		s.cur.style.LineCap = lineCap
	}
}

func (s *Surface) SetLineJoin(join surface.LineJoin) {
	if _, ok := lineJoins[join]; ok {
		s.cur.style.LineJoin = join
	}
}

func (s *Surface) SetFont(font surface.Font) { s.cur.style.Font = font }

func (s *Surface) SetTextAlign(align surface.TextAlign) { s.cur.style.TextAlign = align }

func (s *Surface) SetTextBaseline(baseline surface.TextBaseline) {
	s.cur.style.TextBaseline = baseline
}

var lineCaps = map[surface.LineCap]gg.LineCap{
	surface.LineCapButt:   gg.LineCapButt,
	surface.LineCapRound:  gg.LineCapRound,
	surface.LineCapSquare: gg.LineCapSquare,
}

var lineJoins = map[surface.LineJoin]gg.LineJoin{
	surface.LineJoinMiter: gg.LineJoinMiter,
	surface.LineJoinRound: gg.LineJoinRound,
	surface.LineJoinBevel: gg.LineJoinBevel,
}

// Save pushes the style, transform and clip.
func (s *Surface) Save() {
	s.ctx.Push()
	s.stack = append(s.stack, s.cur)
}

// Restore pops the state pushed by the matching Save.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.ctx.Pop()
	s.cur = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Surface) Rotate(angle float64)   { s.ctx.Rotate(angle) }
func (s *Surface) Translate(x, y float64) { s.ctx.Translate(x, y) }

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// EncodePNG writes the rendered pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.ctx.EncodePNG(w) }

// SavePNG writes the rendered pixels to a PNG file.
func (s *Surface) SavePNG(path string) error { return s.ctx.SavePNG(path) }

// DrawImage draws img scaled into the (x, y, w, h) box in user space.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	x0, y0 := s.ctx.TransformPoint(x, y)
	x1, y1 := s.ctx.TransformPoint(x+w, y+h)
	buf := gg.ImageBufFromImage(img)
	s.composite(func(dc *gg.Context, ox, oy float64) {
		dc.DrawImageEx(buf, gg.DrawImageOptions{
			X:             x0 - ox,
			Y:             y0 - oy,
			DstWidth:      x1 - x0,
			DstHeight:     y1 - y0,
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
			BlendMode:     gg.BlendNormal,
		})
	})
}

// composite runs paint in device space, limited to the bounds of the
// current clip. gg writes text and images straight into the pixmap without
// consulting its clip, so when a clip is active paint targets a transparent
// offscreen context covering the clip bounds, which is then blended in at
// (ox, oy).
func (s *Surface) composite(paint func(dc *gg.Context, ox, oy float64)) {
	w, h := s.Size()
	r := s.cur.clip.intersect(rect{0, 0, float64(w), float64(h)})
	x0, y0 := int(math.Floor(r.x0)), int(math.Floor(r.y0))
	x1, y1 := int(math.Ceil(r.x1)), int(math.Ceil(r.y1))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.Identity()

	if x0 == 0 && y0 == 0 && x1 == w && y1 == h {
		paint(s.ctx, 0, 0)
		return
	}

	off := gg.NewContext(x1-x0, y1-y0)
	defer func() { _ = off.Close() }()
	paint(off, float64(x0), float64(y0))
	s.ctx.DrawImageEx(gg.ImageBufFromImage(off.Image()), gg.DrawImageOptions{
		X:             float64(x0),
		Y:             float64(y0),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// ClipRect intersects the clip with a rectangle in user space.
func (s *Surface) ClipRect(x, y, w, h float64) {
	s.ctx.ClipRect(x, y, w, h)
	s.cur.clip = s.cur.clip.intersect(s.deviceBounds(x, y, w, h))
}

// deviceBounds returns the device bounding box of a user-space rectangle.
func (s *Surface) deviceBounds(x, y, w, h float64) rect {
	r := rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		dx, dy := s.ctx.TransformPoint(p[0], p[1])
		r.x0, r.y0 = math.Min(r.x0, dx), math.Min(r.y0, dy)
		r.x1, r.y1 = math.Max(r.x1, dx), math.Max(r.y1, dy)
	}
	return r
}

// ClearRect sets the pixels under a user-space rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	width, height := s.Size()
	full := rect{0, 0, float64(width), float64(height)}
	r := s.deviceBounds(x, y, w, h).intersect(s.cur.clip).intersect(full)

	if r == full {
		s.ctx.Clear()
		return
	}
	x0, y0 := int(math.Round(r.x0)), int(math.Round(r.y0))
	x1, y1 := int(math.Round(r.x1)), int(math.Round(r.y1))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}
