// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"
	"strconv"
	"strings"
)

// LineCap is the native shape of line endpoints, named as in the HTML
// canvas lineCap property.
type LineCap string

const (
	// LineCapButt ends the line flush with its endpoint.
	LineCapButt LineCap = "butt"

	// LineCapRound adds a semicircle past the endpoint.
	LineCapRound LineCap = "round"

	// LineCapSquare extends the line by half its width.
	LineCapSquare LineCap = "square"
)

// LineJoin is the native shape of line joins.
type LineJoin string

const (
	// LineJoinMiter joins segments with a sharp corner.
	LineJoinMiter LineJoin = "miter"

	// LineJoinRound joins segments with a circular arc.
	LineJoinRound LineJoin = "round"

	// LineJoinBevel cuts the corner off.
	LineJoinBevel LineJoin = "bevel"
)

// TextAlign is the native horizontal text alignment.
type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// TextBaseline is the native vertical text alignment.
type TextBaseline string

const (
	TextBaselineAlphabetic TextBaseline = "alphabetic"
	TextBaselineTop        TextBaseline = "top"
	TextBaselineMiddle     TextBaseline = "middle"
	TextBaselineBottom     TextBaseline = "bottom"
)

// Font is a font size in device pixels plus a family name.
type Font struct {
	Size   float64
	Family string
}

// String formats the font in CSS shorthand, e.g. "20px sans-serif".
func (f Font) String() string {
	return strconv.FormatFloat(f.Size, 'f', -1, 64) + "px " + f.Family
}

// ParseFont parses the "<size>px <family>" shorthand produced by
// Font.String. ok is false when s does not have that shape.
func ParseFont(s string) (f Font, ok bool) {
	size, family, found := strings.Cut(s, "px ")
	if !found {
		return Font{}, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(size), 64)
	if err != nil || math.IsNaN(v) || v < 0 {
		return Font{}, false
	}
	return Font{Size: v, Family: strings.TrimSpace(family)}, true
}

// Style is a snapshot of the style properties a Surface carries on its
// save/restore stack.
type Style struct {
	FillStyle    string
	StrokeStyle  string
	LineWidth    float64
	LineCap      LineCap
	LineJoin     LineJoin
	Font         Font
	TextAlign    TextAlign
	TextBaseline TextBaseline
}

// DefaultStyle returns the initial style of a freshly created HTML canvas.
func DefaultStyle() Style {
	return Style{
		FillStyle:    "#000000",
		StrokeStyle:  "#000000",
		LineWidth:    1,
		LineCap:      LineCapButt,
		LineJoin:     LineJoinMiter,
		Font:         Font{Size: 10, Family: "sans-serif"},
		TextAlign:    TextAlignLeft,
		TextBaseline: TextBaselineAlphabetic,
	}
}

// Options configures surface creation through the registry.
type Options struct {
	// Width and Height are the initial raster size in device pixels.
	Width  int
	Height int
}
