package sketch

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// TextAlign sets the horizontal and vertical text alignment. Unknown
// values give AlignLeft and AlignBaseline.
func (s *Sketch) TextAlign(h HAlign, v VAlign) {
	ta, ok := native(hAlignNative[:], int(h), int(AlignLeft))
	if !ok {
		Logger().Debug("sketch: unknown horizontal alignment", "value", int(h))
	}
	tb, ok := native(vAlignNative[:], int(v), int(AlignBaseline))
	if !ok {
		Logger().Debug("sketch: unknown vertical alignment", "value", int(v))
	}
	s.surf.SetTextAlign(ta)
	s.surf.SetTextBaseline(tb)
}

// TextFont sets the font family, keeping the size.
func (s *Sketch) TextFont(family string) {
	f := s.surf.Style().Font
	f.Family = family
	s.surf.SetFont(f)
}

// TextSize sets the font size in logical units, keeping the family.
func (s *Sketch) TextSize(px float64) {
	f := s.surf.Style().Font
	f.Size = math.Round(px * s.scale)
	s.surf.SetFont(f)
}

// Text draws str at (x, y), filled and/or outlined per the toggles.
func (s *Sketch) Text(str string, x, y float64) {
	str = norm.NFC.String(str)
	px, py := s.mapper(x, y)
	if s.cfg.Fill {
		s.surf.FillText(str, px, py)
	}
	if s.cfg.Stroke {
		s.surf.StrokeText(str, px, py)
	}
}

// TextWidth returns the advance width of str in logical units.
func (s *Sketch) TextWidth(str string) float64 {
	return s.surf.MeasureText(norm.NFC.String(str)) / s.scale
}
