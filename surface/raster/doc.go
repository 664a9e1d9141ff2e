// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a surface.Surface that renders into pixels with
// a gg.Context.
//
// gg keeps only the transform, clip and mask on its Push/Pop stack and
// shares one brush between fill and stroke. Surface layers a canvas-style
// state on top: every Save stores the full style and the device clip
// rectangle, and the fill or stroke color is installed on the context
// immediately before it is used.
//
// Fill and Stroke do not consume the current path, so a shape can be
// filled and then stroked as on an HTML canvas. Paths are built in device
// space at the time each segment is added.
//
// # Fonts
//
// Font families resolve through a process-wide registry preloaded with the
// Go fonts. The CSS generic families sans-serif, serif, system-ui and
// monospace map onto them, and unknown families fall back to "Go":
//
//	raster.RegisterFontFile("Inter", "/usr/share/fonts/Inter.ttf")
//
// Faces are cached per family and pixel size.
//
// # Limitations
//
// Text is drawn at the transformed origin without rotating the glyphs, and
// StrokeText paints filled glyphs in the stroke color. FillRect and
// StrokeRect discard the current path. ClearRect writes
// transparent pixels over the transformed bounding box of the rectangle,
// limited to the current clip. Text and images are cropped to the device
// bounding box of the clip, which differs from the clip only when it was
// set under a rotation.
//
// # Output
//
//	s, _ := raster.New(400, 300)
//	defer s.Close()
//	// ... draw ...
//	_ = s.SavePNG("out.png")
package raster
