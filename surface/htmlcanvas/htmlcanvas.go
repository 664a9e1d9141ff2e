// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

// Package htmlcanvas implements surface.Surface on a browser
// CanvasRenderingContext2D for js/wasm builds.
//
// Every call maps one-to-one onto the canvas method of the same name. The
// surface registers itself as "htmlcanvas", ahead of the raster backend, so
// surface.New picks it in the browser.
package htmlcanvas

import (
	"fmt"
	"image"
	"image/draw"
	"syscall/js"

	"github.com/gogpu/sketch/surface"
)

// Surface draws into an HTML canvas element.
type Surface struct {
	el    js.Value
	ctx   js.Value
	style surface.Style
	stack []surface.Style
}

// New wraps an existing canvas element.
func New(el js.Value) *Surface {
	s := &Surface{el: el, ctx: el.Call("getContext", "2d")}
	s.ctx.Set("imageSmoothingEnabled", true)
	s.ctx.Set("imageSmoothingQuality", "high")
	s.style = surface.DefaultStyle()
	return s
}

// Create makes a detached canvas element of the given size. Append
// Element to the document to show it.
func Create(width, height int) (*Surface, error) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() {
		return nil, fmt.Errorf("htmlcanvas: no document")
	}
	el := doc.Call("createElement", "canvas")
	s := New(el)
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

func init() {
	surface.Register("htmlcanvas", 20, func(opts surface.Options) (surface.Surface, error) {
		return Create(opts.Width, opts.Height)
	}, func() bool {
		return !js.Global().Get("document").IsUndefined()
	})
}

// Element returns the canvas element.
func (s *Surface) Element() js.Value { return s.el }

func (s *Surface) Size() (int, int) {
	return s.el.Get("width").Int(), s.el.Get("height").Int()
}

// Resize sets the element size, which also resets the context state.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("htmlcanvas: invalid size %dx%d", width, height)
	}
	s.el.Set("width", width)
	s.el.Set("height", height)
	s.style = surface.DefaultStyle()
	s.stack = s.stack[:0]
	return nil
}

func (s *Surface) Style() surface.Style { return s.style }

func (s *Surface) SetFillStyle(css string) {
	s.ctx.Set("fillStyle", css)
	s.style.FillStyle = s.ctx.Get("fillStyle").String()
}

func (s *Surface) SetStrokeStyle(css string) {
	s.ctx.Set("strokeStyle", css)
	s.style.StrokeStyle = s.ctx.Get("strokeStyle").String()
}

func (s *Surface) SetLineWidth(width float64) {
	s.ctx.Set("lineWidth", width)
	s.style.LineWidth = s.ctx.Get("lineWidth").Float()
}

func (s *Surface) SetLineCap(lineCap surface.LineCap) {
	s.ctx.Set("lineCap", string(lineCap))
	s.style.LineCap = surface.LineCap(s.ctx.Get("lineCap").String())
}

func (s *Surface) SetLineJoin(join surface.LineJoin) {
	s.ctx.Set("lineJoin", string(join))
	s.style.LineJoin = surface.LineJoin(s.ctx.Get("lineJoin").String())
}

func (s *Surface) SetFont(font surface.Font) {
	s.ctx.Set("font", font.String())
	s.style.Font = font
}

func (s *Surface) SetTextAlign(align surface.TextAlign) {
	s.ctx.Set("textAlign", string(align))
	s.style.TextAlign = surface.TextAlign(s.ctx.Get("textAlign").String())
}

func (s *Surface) SetTextBaseline(baseline surface.TextBaseline) {
	s.ctx.Set("textBaseline", string(baseline))
	s.style.TextBaseline = surface.TextBaseline(s.ctx.Get("textBaseline").String())
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.style)
	s.ctx.Call("save")
}

func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.style = s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.ctx.Call("restore")
}

func (s *Surface) BeginPath()          { s.ctx.Call("beginPath") }
func (s *Surface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }
func (s *Surface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }
func (s *Surface) ClosePath()          { s.ctx.Call("closePath") }
func (s *Surface) Fill()               { s.ctx.Call("fill") }
func (s *Surface) Stroke()             { s.ctx.Call("stroke") }

func (s *Surface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.ctx.Call("bezierCurveTo", c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) RoundRect(x, y, w, h float64, radii []float64) {
	rs := make([]any, len(radii))
	for i, r := range radii {
		rs[i] = r
	}
	s.ctx.Call("roundRect", x, y, w, h, js.ValueOf(rs))
}

func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	s.ctx.Call("ellipse", x, y, rx, ry, rotation, start, end)
}

func (s *Surface) FillRect(x, y, w, h float64)   { s.ctx.Call("fillRect", x, y, w, h) }
func (s *Surface) StrokeRect(x, y, w, h float64) { s.ctx.Call("strokeRect", x, y, w, h) }
func (s *Surface) ClearRect(x, y, w, h float64)  { s.ctx.Call("clearRect", x, y, w, h) }

func (s *Surface) ClipRect(x, y, w, h float64) {
	s.ctx.Call("beginPath")
	s.ctx.Call("rect", x, y, w, h)
	s.ctx.Call("clip")
	s.ctx.Call("beginPath")
}

func (s *Surface) FillText(str string, x, y float64)   { s.ctx.Call("fillText", str, x, y) }
func (s *Surface) StrokeText(str string, x, y float64) { s.ctx.Call("strokeText", str, x, y) }

func (s *Surface) MeasureText(str string) float64 {
	return s.ctx.Call("measureText", str).Get("width").Float()
}

// DrawImage uploads img through an offscreen canvas and draws it scaled.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) || src.Stride != 4*src.Rect.Dx() {
		src = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Rect, img, b.Min, draw.Src)
	}

	buf := js.Global().Get("Uint8ClampedArray").New(len(src.Pix))
	js.CopyBytesToJS(buf, src.Pix)
	data := js.Global().Get("ImageData").New(buf, b.Dx(), b.Dy())

	off := js.Global().Get("document").Call("createElement", "canvas")
	off.Set("width", b.Dx())
	off.Set("height", b.Dy())
	off.Call("getContext", "2d").Call("putImageData", data, 0, 0)
	s.ctx.Call("drawImage", off, x, y, w, h)
}

func (s *Surface) Rotate(angle float64)   { s.ctx.Call("rotate", angle) }
func (s *Surface) Translate(x, y float64) { s.ctx.Call("translate", x, y) }
