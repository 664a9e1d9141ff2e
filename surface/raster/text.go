// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/sketch/surface"
)

func (s *Surface) face() text.Face {
	f := s.cur.style.Font
	return s.fonts.Face(f.Family, f.Size)
}

// FillText draws s with the fill color, anchored per the text alignment
// and baseline.
func (s *Surface) FillText(str string, x, y float64) {
	s.drawText(str, x, y, s.cur.fill)
}

// StrokeText draws s with the stroke color.
func (s *Surface) StrokeText(str string, x, y float64) {
	s.drawText(str, x, y, s.cur.strk)
}

func (s *Surface) drawText(str string, x, y float64, col gg.RGBA) {
	face := s.face()
	if face == nil || str == "" {
		return
	}
	ax, ay := anchorOffset(face, str, s.cur.style.TextAlign, s.cur.style.TextBaseline)
	dx, dy := s.ctx.TransformPoint(x, y)

	s.composite(func(dc *gg.Context, ox, oy float64) {
		dc.SetFont(face)
		dc.SetFillBrush(gg.Solid(col))
		dc.DrawString(str, dx+ax-ox, dy+ay-oy)
	})
}

// anchorOffset returns the offset from the anchor point to the start of
// the baseline.
func anchorOffset(face text.Face, str string, align surface.TextAlign, baseline surface.TextBaseline) (float64, float64) {
	var ax, ay float64
	switch align {
	case surface.TextAlignCenter:
		ax = -face.Advance(str) / 2
	case surface.TextAlignRight:
		ax = -face.Advance(str)
	}

	m := face.Metrics()
	switch baseline {
	case surface.TextBaselineTop:
		ay = m.Ascent
	case surface.TextBaselineMiddle:
		ay = (m.Ascent - m.Descent) / 2
	case surface.TextBaselineBottom:
		ay = -m.Descent
	}
	return ax, ay
}

// MeasureText returns the advance width of s in the current font.
func (s *Surface) MeasureText(str string) float64 {
	face := s.face()
	if face == nil {
		return 0
	}
	return face.Advance(str)
}
