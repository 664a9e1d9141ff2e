// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the drawing surface the sketch facade renders to.
//
// Surface uses the vocabulary of the HTML canvas 2D context: CSS color
// strings, a current path, fill and stroke, a save/restore stack that
// carries every style property, and a rectangular clip. Keeping the
// contract this close to the canvas lets the same facade code drive:
//
//   - a CPU raster backed by gg (package surface/raster)
//   - a command recorder used for tests and replay (package surface/record)
//   - a browser canvas under js/wasm (package surface/htmlcanvas)
//
// # Registry
//
// Backends register themselves by name and priority from an init
// function. New picks the best available backend; NewByName selects one
// explicitly:
//
//	import _ "github.com/gogpu/sketch/surface/raster"
//
//	s, err := surface.NewByName("raster", 800, 600)
//	if err != nil {
//	    return err
//	}
//
// # Native Types
//
// LineCap, LineJoin, TextAlign and TextBaseline are string types whose
// values are the canvas keywords ("butt", "miter", "center", "middle").
// Font pairs a pixel size with a family name and formats as CSS
// shorthand. Style snapshots all of them so callers can capture and
// reapply the full style around a Resize.
package surface
