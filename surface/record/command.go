// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package record

import (
	"image"
	"strconv"
	"strings"
)

// CommandType identifies the surface call a Command captures.
type CommandType uint8

const (
	// State commands
	CmdResize  CommandType = iota // Reallocate the raster
	CmdSave                       // Push state
	CmdRestore                    // Pop state

	// Style commands
	CmdSetFillStyle    // Set fill color
	CmdSetStrokeStyle  // Set stroke color
	CmdSetLineWidth    // Set line width
	CmdSetLineCap      // Set line cap
	CmdSetLineJoin     // Set line join
	CmdSetFont         // Set font
	CmdSetTextAlign    // Set horizontal text alignment
	CmdSetTextBaseline // Set vertical text alignment

	// Path commands
	CmdBeginPath     // Start a new path
	CmdMoveTo        // Start a subpath
	CmdLineTo        // Add a line segment
	CmdBezierCurveTo // Add a cubic segment
	CmdClosePath     // Close the subpath
	CmdRoundRect     // Add a rounded rectangle
	CmdEllipse       // Add an elliptical arc

	// Drawing commands
	CmdFill       // Fill the current path
	CmdStroke     // Stroke the current path
	CmdFillRect   // Fill a rectangle
	CmdStrokeRect // Stroke a rectangle
	CmdClearRect  // Clear a rectangle
	CmdClipRect   // Clip to a rectangle
	CmdFillText   // Fill text
	CmdStrokeText // Stroke text
	CmdDrawImage  // Draw an image

	// Transform commands
	CmdRotate    // Rotate the transform
	CmdTranslate // Translate the transform
)

var commandTypeNames = [...]string{
	CmdResize:          "resize",
	CmdSave:            "save",
	CmdRestore:         "restore",
	CmdSetFillStyle:    "fillStyle",
	CmdSetStrokeStyle:  "strokeStyle",
	CmdSetLineWidth:    "lineWidth",
	CmdSetLineCap:      "lineCap",
	CmdSetLineJoin:     "lineJoin",
	CmdSetFont:         "font",
	CmdSetTextAlign:    "textAlign",
	CmdSetTextBaseline: "textBaseline",
	CmdBeginPath:       "beginPath",
	CmdMoveTo:          "moveTo",
	CmdLineTo:          "lineTo",
	CmdBezierCurveTo:   "bezierCurveTo",
	CmdClosePath:       "closePath",
	CmdRoundRect:       "roundRect",
	CmdEllipse:         "ellipse",
	CmdFill:            "fill",
	CmdStroke:          "stroke",
	CmdFillRect:        "fillRect",
	CmdStrokeRect:      "strokeRect",
	CmdClearRect:       "clearRect",
	CmdClipRect:        "clipRect",
	CmdFillText:        "fillText",
	CmdStrokeText:      "strokeText",
	CmdDrawImage:       "drawImage",
	CmdRotate:          "rotate",
	CmdTranslate:       "translate",
}

// String returns the canvas name of the call.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "unknown"
}

// Command is one recorded surface call.
type Command struct {
	Type CommandType

	// Args holds the numeric arguments in call order. RoundRect appends
	// its radii after x, y, w, h.
	Args []float64

	// Text holds the string argument of style and text commands.
	Text string

	// Image is set for CmdDrawImage.
	Image image.Image
}

// String formats the command as a call, e.g. "fillRect(0,0,10,10)" or
// "fillStyle=#ff0000".
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Type.String())

	switch c.Type {
	case CmdSetFillStyle, CmdSetStrokeStyle, CmdSetLineCap, CmdSetLineJoin,
		CmdSetFont, CmdSetTextAlign, CmdSetTextBaseline:
		b.WriteByte('=')
		b.WriteString(c.Text)
		return b.String()
	case CmdSetLineWidth:
		b.WriteByte('=')
		b.WriteString(formatFloat(c.Args[0]))
		return b.String()
	}

	b.WriteByte('(')
	sep := ""
	if c.Type == CmdFillText || c.Type == CmdStrokeText {
		b.WriteString(strconv.Quote(c.Text))
		sep = ","
	}
	if c.Type == CmdDrawImage && c.Image != nil {
		bounds := c.Image.Bounds()
		b.WriteString(strconv.Itoa(bounds.Dx()) + "x" + strconv.Itoa(bounds.Dy()))
		sep = ","
	}
	for _, a := range c.Args {
		b.WriteString(sep)
		b.WriteString(formatFloat(a))
		sep = ","
	}
	b.WriteByte(')')
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
