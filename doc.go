// Package sketch provides a Processing-style immediate-mode drawing API for Go.
//
// # Overview
//
// sketch translates Processing-language calls ("draw a rectangle in CENTER
// mode", "set the stroke join to BEVEL") into the primitives of a 2D
// drawing surface modelled on the HTML canvas. It keeps the small pieces
// of state the surface does not: fill and stroke toggles, shape building,
// rect/ellipse/image anchor modes and a replaceable clip. It handles the
// device scale factor for high-density output.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    "github.com/gogpu/sketch/surface/raster"
//	)
//
//	s, _ := raster.New(512, 512)
//	sk := sketch.New(s)
//
//	sk.Background(sketch.Gray(240))
//	sk.Fill(sketch.Hex("#e33"))
//	sk.Stroke(sketch.Named("black"))
//	sk.RectMode(sketch.RectCenter)
//	sk.Rect(256, 256, 200, 120, 16)
//
//	_ = s.SavePNG("output.png")
//
// # Surfaces
//
// Any surface.Surface can be drawn on:
//   - surface/raster renders pixels with gg
//   - surface/record records calls for inspection and replay
//   - surface/htmlcanvas drives a browser canvas under js/wasm
//
// # Coordinate System
//
// Logical coordinates are multiplied by the scale factor (WithScale).
// Negative coordinates count back from the far edge, so (-10, 20) is ten
// units left of the right edge. WithMapper replaces this mapping.
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing clockwise on screen
//
// # State
//
// Push and Pop save and restore both the surface style (colors, line
// width, cap, join, font, alignment), the transform and the drawing state
// (toggles, modes, clip). Pop with nothing pushed is ignored.
//
// # Colors
//
// Color values are built with Packed, Hex, Named, ParseColor, RGB, RGBA,
// RGBA8, Gray, GrayA or FromColor. Malformed input gives black.
package sketch
