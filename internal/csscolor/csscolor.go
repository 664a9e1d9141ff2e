// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package csscolor parses the CSS color strings handed to surfaces.
//
// Supported forms are hex ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa"),
// functional ("rgb(r,g,b)", "rgba(r,g,b,a)" with a 0-1 alpha) and the
// SVG/CSS keywords, plus "transparent".
package csscolor

import (
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Parse converts a CSS color string to a gg color. ok is false when s is
// not one of the supported forms; the returned color is then opaque black.
func Parse(s string) (c gg.RGBA, ok bool) {
	s = strings.TrimSpace(s)
	black := gg.RGBA{A: 1}

	switch {
	case strings.HasPrefix(s, "#"):
		if !validHex(s[1:]) {
			return black, false
		}
		return gg.Hex(s), true
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}

	name := strings.ToLower(s)
	if name == "transparent" {
		return gg.RGBA{}, true
	}
	if named, found := colornames.Map[name]; found {
		return gg.FromColor(named), true
	}
	return black, false
}

// Valid reports whether s parses.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

func validHex(h string) bool {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func parseFunc(s string) (gg.RGBA, bool) {
	black := gg.RGBA{A: 1}
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return black, false
	}
	fn := s[:open]
	parts := strings.Split(s[open+1:len(s)-1], ",")

	want := 3
	if fn == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return black, false
	}

	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return black, false
		}
		if i < 3 {
			f = clamp(f, 0, 255) / 255
		} else {
			f = clamp(f, 0, 1)
		}
		v[i] = f
	}
	return gg.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
