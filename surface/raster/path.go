// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/gogpu/gg"
)

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

func (s *Surface) BeginPath() {
	s.ctx.ClearPath()
	s.hasPoint = false
}

func (s *Surface) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
	s.hasPoint = true
}

// LineTo adds a line, or starts a subpath when there is no current point.
func (s *Surface) LineTo(x, y float64) {
	if !s.hasPoint {
		s.MoveTo(x, y)
		return
	}
	s.ctx.LineTo(x, y)
}

func (s *Surface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !s.hasPoint {
		s.MoveTo(c1x, c1y)
	}
	s.ctx.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) ClosePath() {
	if s.hasPoint {
		s.ctx.ClosePath()
	}
}

// RoundRect adds a closed rounded rectangle subpath. Radii are clamped so
// that adjacent corners never overlap.
func (s *Surface) RoundRect(x, y, w, h float64, radii []float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	tl, tr, br, bl := expandRadii(radii)

	f := 1.0
	for _, pair := range [4][3]float64{{tl + tr, w}, {bl + br, w}, {tl + bl, h}, {tr + br, h}} {
		if pair[0] > pair[1] && pair[0] > 0 {
			f = math.Min(f, pair[1]/pair[0])
		}
	}
	tl, tr, br, bl = tl*f, tr*f, br*f, bl*f

	s.MoveTo(x+tl, y)
	s.ctx.LineTo(x+w-tr, y)
	s.corner(x+w-tr, y+tr, tr, -math.Pi/2)
	s.ctx.LineTo(x+w, y+h-br)
	s.corner(x+w-br, y+h-br, br, 0)
	s.ctx.LineTo(x+bl, y+h)
	s.corner(x+bl, y+h-bl, bl, math.Pi/2)
	s.ctx.LineTo(x, y+tl)
	s.corner(x+tl, y+tl, tl, math.Pi)
	s.ctx.ClosePath()
}

// corner adds a clockwise quarter circle around (cx, cy) starting at angle a.
func (s *Surface) corner(cx, cy, r, a float64) {
	if r <= 0 {
		return
	}
	s.arcSegment(cx, cy, r, r, 0, a, a+math.Pi/2)
}

// expandRadii follows the canvas roundRect radii list rules.
func expandRadii(radii []float64) (tl, tr, br, bl float64) {
	r := make([]float64, len(radii))
	for i, v := range radii {
		if v > 0 && !math.IsInf(v, 0) {
			r[i] = v
		}
	}
	switch len(r) {
	case 0:
		return 0, 0, 0, 0
	case 1:
		return r[0], r[0], r[0], r[0]
	case 2:
		return r[0], r[1], r[0], r[1]
	case 3:
		return r[0], r[1], r[2], r[1]
	default:
		return r[0], r[1], r[2], r[3]
	}
}

// Ellipse adds a clockwise elliptical arc from start to end. A sweep of a
// full turn or more draws the whole ellipse. When the path already has a
// current point it is joined to the arc start with a line.
func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	if rx < 0 || ry < 0 {
		return
	}
	sweep := end - start
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}

	px, py := ellipsePoint(x, y, rx, ry, rotation, start)
	s.LineTo(px, py)

	n := int(math.Ceil(sweep / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		s.arcSegment(x, y, rx, ry, rotation, a1, a1+step)
	}
}

func ellipsePoint(cx, cy, rx, ry, rotation, t float64) (float64, float64) {
	sinR, cosR := math.Sincos(rotation)
	sinT, cosT := math.Sincos(t)
	ex, ey := rx*cosT, ry*sinT
	return cx + ex*cosR - ey*sinR, cy + ex*sinR + ey*cosR
}

func ellipseTangent(rx, ry, rotation, t float64) (float64, float64) {
	sinR, cosR := math.Sincos(rotation)
	sinT, cosT := math.Sincos(t)
	dx, dy := -rx*sinT, ry*cosT
	return dx*cosR - dy*sinR, dx*sinR + dy*cosR
}

// arcSegment appends one cubic approximating the arc from a1 to a2, which
// must span at most a quarter turn.
func (s *Surface) arcSegment(cx, cy, rx, ry, rotation, a1, a2 float64) {
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)
	x1, y1 := ellipsePoint(cx, cy, rx, ry, rotation, a1)
	x2, y2 := ellipsePoint(cx, cy, rx, ry, rotation, a2)
	d1x, d1y := ellipseTangent(rx, ry, rotation, a1)
	d2x, d2y := ellipseTangent(rx, ry, rotation, a2)
	s.ctx.CubicTo(x1+k*d1x, y1+k*d1y, x2-k*d2x, y2-k*d2y, x2, y2)
}

// Fill paints the current path with the fill color, keeping the path.
func (s *Surface) Fill() {
	s.ctx.SetFillBrush(gg.Solid(s.cur.fill))
	if err := s.ctx.FillPreserve(); err != nil {
		logger().Debug("raster: fill failed", "err", err)
	}
}

// Stroke outlines the current path with the stroke color and line style,
// keeping the path.
func (s *Surface) Stroke() {
	s.applyStroke()
	if err := s.ctx.StrokePreserve(); err != nil {
		logger().Debug("raster: stroke failed", "err", err)
	}
}

func (s *Surface) applyStroke() {
	st := s.cur.style
	s.ctx.SetStrokeBrush(gg.Solid(s.cur.strk))
	s.ctx.SetLineWidth(st.LineWidth)
	s.ctx.SetLineCap(lineCaps[st.LineCap])
	s.ctx.SetLineJoin(lineJoins[st.LineJoin])
}

// FillRect fills a rectangle. gg keeps a single path, so the current path
// is discarded.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.withRectPath(x, y, w, h, s.ctx.Fill, func() { s.ctx.SetFillBrush(gg.Solid(s.cur.fill)) })
}

// StrokeRect strokes a rectangle, discarding the current path.
func (s *Surface) StrokeRect(x, y, w, h float64) {
	s.withRectPath(x, y, w, h, s.ctx.Stroke, s.applyStroke)
}

func (s *Surface) withRectPath(x, y, w, h float64, paint func() error, setup func()) {
	if w == 0 && h == 0 {
		return
	}
	s.ctx.ClearPath()
	s.ctx.DrawRectangle(x, y, w, h)
	setup()
	if err := paint(); err != nil {
		logger().Debug("raster: rect paint failed", "err", err)
	}
	s.hasPoint = false
}
