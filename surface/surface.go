// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
)

// Surface is the host drawing surface the sketch facade drives.
//
// The method set follows the HTML canvas 2D context: a current path built
// with BeginPath/MoveTo/LineTo/BezierCurveTo/ClosePath, painted with Fill and
// Stroke, a save/restore stack that carries every style property, and a set
// of rectangle shortcuts that do not touch the current path.
//
// All coordinates and lengths are in device pixels. Colors are CSS color
// strings as produced by the sketch package.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Size returns the backing raster size in device pixels.
	Size() (width, height int)

	// Resize reallocates and clears the backing raster. As on an HTML
	// canvas, it also resets the style, the transform, the clip and the
	// save stack; callers that need them must capture Style before and
	// reapply it after.
	Resize(width, height int) error

	// Style returns a snapshot of the current style properties.
	Style() Style

	SetFillStyle(css string)
	SetStrokeStyle(css string)
	SetLineWidth(width float64)
	SetLineCap(lineCap LineCap)
	SetLineJoin(join LineJoin)
	SetFont(font Font)
	SetTextAlign(align TextAlign)
	SetTextBaseline(baseline TextBaseline)

	// Save pushes the style, transform and clip onto the state stack.
	Save()

	// Restore pops the state stack. Restoring an empty stack is a no-op.
	Restore()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	// RoundRect adds a rounded rectangle subpath. radii holds one radius for
	// all corners or four radii in top-left, top-right, bottom-right,
	// bottom-left order.
	RoundRect(x, y, w, h float64, radii []float64)

	// Ellipse adds an elliptical arc subpath centered at (x, y).
	Ellipse(x, y, rx, ry, rotation, start, end float64)

	// Fill paints the current path with the fill style.
	Fill()

	// Stroke outlines the current path with the stroke style.
	Stroke()

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)

	// ClipRect intersects the clip region with a rectangle. The clip is
	// released by the Restore matching an earlier Save.
	ClipRect(x, y, w, h float64)

	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)

	// MeasureText returns the advance width of s in the current font.
	MeasureText(s string) float64

	// DrawImage draws img scaled into the (x, y, w, h) box.
	DrawImage(img image.Image, x, y, w, h float64)

	Rotate(angle float64)
	Translate(x, y float64)
}

// Snapshotter is an optional interface for surfaces that can hand out
// their raster contents.
type Snapshotter interface {
	Surface

	// Image returns the current surface contents.
	Image() image.Image
}

// ApplyStyle sets every property of st on s.
func ApplyStyle(s Surface, st Style) {
	s.SetFillStyle(st.FillStyle)
	s.SetStrokeStyle(st.StrokeStyle)
	s.SetLineWidth(st.LineWidth)
	s.SetLineCap(st.LineCap)
	s.SetLineJoin(st.LineJoin)
	s.SetFont(st.Font)
	s.SetTextAlign(st.TextAlign)
	s.SetTextBaseline(st.TextBaseline)
}
