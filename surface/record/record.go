// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record provides a Surface that records every call as a Command.
//
// A recording can be inspected with Commands, rendered later with Replay
// onto any other surface, or compared against an expected call sequence in
// tests. The style stack behaves like an HTML canvas: Save copies the
// style, Restore pops it, Resize resets it to the defaults.
//
//	rec := record.New(800, 600)
//	sk := sketch.New(rec)
//	sk.Rect(10, 10, 100, 50)
//	for _, c := range rec.Commands() {
//	    fmt.Println(c)
//	}
package record

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/gogpu/sketch/surface"
)

// Surface is a recording surface.Surface.
type Surface struct {
	width, height int
	style         surface.Style
	stack         []surface.Style
	commands      []Command
}

var _ surface.Surface = (*Surface)(nil)

// New creates a recording surface of the given device size.
func New(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		style:  surface.DefaultStyle(),
	}
}

func init() {
	surface.Register("record", 1, func(opts surface.Options) (surface.Surface, error) {
		return New(opts.Width, opts.Height), nil
	}, nil)
}

// Commands returns a copy of the recorded commands.
func (s *Surface) Commands() []Command {
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Strings returns the recorded commands formatted with Command.String.
func (s *Surface) Strings() []string {
	out := make([]string, len(s.commands))
	for i, c := range s.commands {
		out[i] = c.String()
	}
	return out
}

// Len returns the number of recorded commands.
func (s *Surface) Len() int { return len(s.commands) }

// Reset discards the recorded commands. Size and style are kept.
func (s *Surface) Reset() { s.commands = s.commands[:0] }

// Depth returns the save stack depth.
func (s *Surface) Depth() int { return len(s.stack) }

// Replay issues every recorded command on dst in order. It stops at the
// first Resize that dst refuses.
func (s *Surface) Replay(dst surface.Surface) error {
	for i, c := range s.commands {
		if err := apply(dst, c); err != nil {
			return fmt.Errorf("record: replay command %d (%s): %w", i, c.Type, err)
		}
	}
	return nil
}

func apply(dst surface.Surface, c Command) error {
	a := c.Args
	switch c.Type {
	case CmdResize:
		return dst.Resize(int(a[0]), int(a[1]))
	case CmdSave:
		dst.Save()
	case CmdRestore:
		dst.Restore()
	case CmdSetFillStyle:
		dst.SetFillStyle(c.Text)
	case CmdSetStrokeStyle:
		dst.SetStrokeStyle(c.Text)
	case CmdSetLineWidth:
		dst.SetLineWidth(a[0])
	case CmdSetLineCap:
		dst.SetLineCap(surface.LineCap(c.Text))
	case CmdSetLineJoin:
		dst.SetLineJoin(surface.LineJoin(c.Text))
	case CmdSetFont:
		f, _ := surface.ParseFont(c.Text)
		dst.SetFont(f)
	case CmdSetTextAlign:
		dst.SetTextAlign(surface.TextAlign(c.Text))
	case CmdSetTextBaseline:
		dst.SetTextBaseline(surface.TextBaseline(c.Text))
	case CmdBeginPath:
		dst.BeginPath()
	case CmdMoveTo:
		dst.MoveTo(a[0], a[1])
	case CmdLineTo:
		dst.LineTo(a[0], a[1])
	case CmdBezierCurveTo:
		dst.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
	case CmdClosePath:
		dst.ClosePath()
	case CmdRoundRect:
		dst.RoundRect(a[0], a[1], a[2], a[3], a[4:])
	case CmdEllipse:
		dst.Ellipse(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
	case CmdFill:
		dst.Fill()
	case CmdStroke:
		dst.Stroke()
	case CmdFillRect:
		dst.FillRect(a[0], a[1], a[2], a[3])
	case CmdStrokeRect:
		dst.StrokeRect(a[0], a[1], a[2], a[3])
	case CmdClearRect:
		dst.ClearRect(a[0], a[1], a[2], a[3])
	case CmdClipRect:
		dst.ClipRect(a[0], a[1], a[2], a[3])
	case CmdFillText:
		dst.FillText(c.Text, a[0], a[1])
	case CmdStrokeText:
		dst.StrokeText(c.Text, a[0], a[1])
	case CmdDrawImage:
		dst.DrawImage(c.Image, a[0], a[1], a[2], a[3])
	case CmdRotate:
		dst.Rotate(a[0])
	case CmdTranslate:
		dst.Translate(a[0], a[1])
	default:
		return fmt.Errorf("unknown command type %d", c.Type)
	}
	return nil
}

func (s *Surface) add(t CommandType, text string, args ...float64) {
	s.commands = append(s.commands, Command{Type: t, Text: text, Args: args})
}

// Size returns the device size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize changes the recorded size and resets style and save stack.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("record: invalid dimensions %dx%d", width, height)
	}
	s.width, s.height = width, height
	s.style = surface.DefaultStyle()
	s.stack = s.stack[:0]
	s.add(CmdResize, "", float64(width), float64(height))
	return nil
}

// Style returns the current style.
func (s *Surface) Style() surface.Style { return s.style }

func (s *Surface) SetFillStyle(css string) {
	s.style.FillStyle = css
	s.add(CmdSetFillStyle, css)
}

func (s *Surface) SetStrokeStyle(css string) {
	s.style.StrokeStyle = css
	s.add(CmdSetStrokeStyle, css)
}

func (s *Surface) SetLineWidth(width float64) {
	s.style.LineWidth = width
	s.add(CmdSetLineWidth, "", width)
}

func (s *Surface) SetLineCap(lineCap surface.LineCap) {
	s.style.LineCap = lineCap
	s.add(CmdSetLineCap, string(lineCap))
}

func (s *Surface) SetLineJoin(join surface.LineJoin) {
	s.style.LineJoin = join
	s.add(CmdSetLineJoin, string(join))
}

func (s *Surface) SetFont(font surface.Font) {
	s.style.Font = font
	s.add(CmdSetFont, font.String())
}

func (s *Surface) SetTextAlign(align surface.TextAlign) {
	s.style.TextAlign = align
	s.add(CmdSetTextAlign, string(align))
}

func (s *Surface) SetTextBaseline(baseline surface.TextBaseline) {
	s.style.TextBaseline = baseline
	s.add(CmdSetTextBaseline, string(baseline))
}

// Save pushes the current style.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.style)
	s.add(CmdSave, "")
}

// Restore pops the style stack. An empty stack leaves the style unchanged.
func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.style = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
	s.add(CmdRestore, "")
}

func (s *Surface) BeginPath()          { s.add(CmdBeginPath, "") }
func (s *Surface) MoveTo(x, y float64) { s.add(CmdMoveTo, "", x, y) }
func (s *Surface) LineTo(x, y float64) { s.add(CmdLineTo, "", x, y) }
func (s *Surface) ClosePath()          { s.add(CmdClosePath, "") }
func (s *Surface) Fill()               { s.add(CmdFill, "") }
func (s *Surface) Stroke()             { s.add(CmdStroke, "") }

func (s *Surface) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.add(CmdBezierCurveTo, "", c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) RoundRect(x, y, w, h float64, radii []float64) {
	args := append([]float64{x, y, w, h}, radii...)
	s.add(CmdRoundRect, "", args...)
}

func (s *Surface) Ellipse(x, y, rx, ry, rotation, start, end float64) {
	s.add(CmdEllipse, "", x, y, rx, ry, rotation, start, end)
}

func (s *Surface) FillRect(x, y, w, h float64)   { s.add(CmdFillRect, "", x, y, w, h) }
func (s *Surface) StrokeRect(x, y, w, h float64) { s.add(CmdStrokeRect, "", x, y, w, h) }
func (s *Surface) ClearRect(x, y, w, h float64)  { s.add(CmdClearRect, "", x, y, w, h) }
func (s *Surface) ClipRect(x, y, w, h float64)   { s.add(CmdClipRect, "", x, y, w, h) }

func (s *Surface) FillText(text string, x, y float64)   { s.add(CmdFillText, text, x, y) }
func (s *Surface) StrokeText(text string, x, y float64) { s.add(CmdStrokeText, text, x, y) }

// MeasureText estimates the advance as half the font size per rune. It is
// not recorded.
func (s *Surface) MeasureText(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * s.style.Font.Size / 2
}

func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	s.commands = append(s.commands, Command{Type: CmdDrawImage, Image: img, Args: []float64{x, y, w, h}})
}

func (s *Surface) Rotate(angle float64)   { s.add(CmdRotate, "", angle) }
func (s *Surface) Translate(x, y float64) { s.add(CmdTranslate, "", x, y) }
