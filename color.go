package sketch

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/sketch/internal/csscolor"
	"golang.org/x/image/colornames"
)

// fallbackCSS is used for malformed color input.
const fallbackCSS = "#000"

// Color is a color in the form handed to the surface: a canonical CSS
// color string. The zero Color is the fallback black.
type Color struct {
	css string
}

// CSS returns the canonical CSS string.
func (c Color) CSS() string {
	if c.css == "" {
		return fallbackCSS
	}
	return c.css
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.CSS() }

// Packed builds a color from a packed integer, 0xRRGGBB or 0xRRGGBBAA
// when the value does not fit in 24 bits.
func Packed(v uint32) Color {
	if v > 0xFFFFFF {
		return Color{"#" + pad(strconv.FormatUint(uint64(v), 16), 8)}
	}
	return Color{"#" + pad(strconv.FormatUint(uint64(v), 16), 6)}
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

// Hex builds a color from 3, 4, 6 or 8 hex digits with an optional leading
// "#". Short forms are expanded; anything else yields the fallback.
func Hex(s string) Color {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	for i := 0; i < len(h); i++ {
		if c := h[i]; !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return Color{}
		}
	}
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		return Color{b.String()}
	case 6, 8:
		return Color{"#" + h}
	}
	return Color{}
}

// Named builds a color from a CSS keyword such as "white" or
// "cornflowerblue". Unknown names yield the fallback.
func Named(name string) Color {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "transparent" {
		return Color{n}
	}
	if _, ok := colornames.Map[n]; ok {
		return Color{n}
	}
	return Color{}
}

// ParseColor accepts any string form: hex with a leading "#", a decimal
// packed integer, rgb()/rgba() notation or a keyword.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return Hex(s)
	case strings.HasPrefix(s, "rgb"):
		if csscolor.Valid(s) {
			return Color{strings.ReplaceAll(s, " ", "")}
		}
		return Color{}
	}
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Packed(uint32(v))
	}
	return Named(s)
}

// RGB builds an opaque color from 0-255 components.
func RGB(r, g, b int) Color {
	return Color{"rgb(" + channels(r, g, b) + ")"}
}

// RGBA builds a color from 0-255 components and an alpha fraction in [0, 1].
func RGBA(r, g, b int, a float64) Color {
	return Color{"rgba(" + channels(r, g, b) + "," + formatAlpha(a) + ")"}
}

// RGBA8 builds a color whose alpha is a byte, 255 being opaque.
func RGBA8(r, g, b int, a uint8) Color {
	return RGBA(r, g, b, float64(a)/255)
}

// Gray builds an opaque gray from a 0-255 level.
func Gray(v int) Color { return RGB(v, v, v) }

// GrayA builds a gray with an alpha fraction.
func GrayA(v int, a float64) Color { return RGBA(v, v, v, a) }

// FromColor converts a standard library color.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return Packed(uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B))
	}
	return RGBA8(int(n.R), int(n.G), int(n.B), n.A)
}

func channels(r, g, b int) string {
	return strconv.Itoa(clampByte(r)) + "," + strconv.Itoa(clampByte(g)) + "," + strconv.Itoa(clampByte(b))
}

func clampByte(v int) int {
	return max(0, min(255, v))
}

func formatAlpha(a float64) string {
	if math.IsNaN(a) {
		a = 1
	}
	a = math.Max(0, math.Min(1, a))
	return strconv.FormatFloat(math.Round(a*1e4)/1e4, 'f', -1, 64)
}
