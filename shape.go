package sketch

import "math"

// paint fills and strokes the current path per the toggles.
func (s *Sketch) paint() {
	if s.cfg.Fill {
		s.surf.Fill()
	}
	if s.cfg.Stroke {
		s.surf.Stroke()
	}
}

// Rect draws a rectangle interpreted per the rect mode. One non-zero
// radius rounds every corner; four radii round the top-left, top-right,
// bottom-right and bottom-left corners.
func (s *Sketch) Rect(x0, y0, x1, y1 float64, radii ...float64) {
	s.surf.BeginPath()
	x, y := s.mapper(x0, y0)
	w, h := x1*s.scale, y1*s.scale

	switch s.cfg.RectMode {
	case RectCorner:
	case RectCorners:
		x2, y2 := s.mapper(x1, y1)
		w, h = x2-x, y2-y
	case RectRadius:
		x, y = x-w, y-h
		w, h = w*2, h*2
	default:
		x, y = x-w/2, y-h/2
	}

	if len(radii) > 0 && radii[0] != 0 {
		r := []float64{radii[0] * s.scale}
		if len(radii) >= 4 {
			r = append(r, radii[1]*s.scale, radii[2]*s.scale, radii[3]*s.scale)
		}
		s.surf.RoundRect(x, y, w, h, r)
		s.paint()
		return
	}
	if s.cfg.Fill {
		s.surf.FillRect(x, y, w, h)
	}
	if s.cfg.Stroke {
		s.surf.StrokeRect(x, y, w, h)
	}
}

// Square draws a size x size rectangle.
func (s *Sketch) Square(x, y, size float64) { s.Rect(x, y, size, size) }

// Ellipse draws an ellipse interpreted per the ellipse mode. A negative w
// or h extends the ellipse the other way; the radii are always positive.
func (s *Sketch) Ellipse(x, y, w, h float64) {
	s.surf.BeginPath()
	cx, cy := s.mapper(x, y)
	rx, ry := w*s.scale/2, h*s.scale/2

	switch s.cfg.EllipseMode {
	case EllipseRadius:
		rx, ry = rx*2, ry*2
	case EllipseCorner:
		cx, cy = cx+rx, cy+ry
	case EllipseCorners:
		x2, y2 := s.mapper(w, h)
		rx, ry = (x2-cx)/2, (y2-cy)/2
		cx, cy = cx+rx, cy+ry
	}
	s.surf.Ellipse(cx, cy, math.Abs(rx), math.Abs(ry), 0, 0, 2*math.Pi)
	s.paint()
}

// Circle draws a circle of diameter d.
func (s *Sketch) Circle(x, y, d float64) { s.Ellipse(x, y, d, d) }

// Arc draws an elliptical arc around (x, y) with radii rx and ry from
// start to stop radians, clockwise.
func (s *Sketch) Arc(x, y, rx, ry, start, stop float64) {
	s.surf.BeginPath()
	cx, cy := s.mapper(x, y)
	s.surf.Ellipse(cx, cy, rx*s.scale, ry*s.scale, 0, start, stop)
	s.paint()
}

// Line draws a line segment. It draws nothing while stroke is off.
func (s *Sketch) Line(x0, y0, x1, y1 float64) {
	if !s.cfg.Stroke {
		return
	}
	s.surf.BeginPath()
	s.surf.MoveTo(s.mapper(x0, y0))
	s.surf.LineTo(s.mapper(x1, y1))
	s.surf.Stroke()
}

// Bezier draws a cubic curve from (x1, y1) to (x4, y4). It draws nothing
// while stroke is off.
func (s *Sketch) Bezier(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	if !s.cfg.Stroke {
		return
	}
	s.surf.BeginPath()
	s.surf.MoveTo(s.mapper(x1, y1))
	c1x, c1y := s.mapper(x2, y2)
	c2x, c2y := s.mapper(x3, y3)
	ex, ey := s.mapper(x4, y4)
	s.surf.BezierCurveTo(c1x, c1y, c2x, c2y, ex, ey)
	s.surf.Stroke()
}

// Point paints one logical pixel at (x, y) in the fill color.
func (s *Sketch) Point(x, y float64) {
	s.surf.BeginPath()
	px, py := s.mapper(x, y)
	s.surf.FillRect(px, py, s.scale, s.scale)
}

// Triangle draws a closed triangle.
func (s *Sketch) Triangle(x0, y0, x1, y1, x2, y2 float64) {
	s.Polygon(x0, y0, x1, y1, x2, y2)
}

// Quad draws a closed quadrilateral.
func (s *Sketch) Quad(x0, y0, x1, y1, x2, y2, x3, y3 float64) {
	s.Polygon(x0, y0, x1, y1, x2, y2, x3, y3)
}

// Polygon draws a closed polygon through the coordinate pairs. A trailing
// odd coordinate is ignored; fewer than two coordinates draw nothing.
func (s *Sketch) Polygon(coords ...float64) {
	if len(coords) < 2 {
		return
	}
	s.surf.BeginPath()
	s.surf.MoveTo(s.mapper(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		s.surf.LineTo(s.mapper(coords[i], coords[i+1]))
	}
	s.surf.ClosePath()
	s.paint()
}

// BeginShape starts a free-form shape built with Vertex and BezierVertex.
func (s *Sketch) BeginShape() {
	s.cfg.Shape = true
	s.surf.BeginPath()
}

// Vertex adds a line to (x, y). The first vertex of a shape only moves
// the pen there.
func (s *Sketch) Vertex(x, y float64) {
	px, py := s.mapper(x, y)
	if s.cfg.Shape {
		s.cfg.Shape = false
		s.surf.MoveTo(px, py)
		return
	}
	s.surf.LineTo(px, py)
}

// BezierVertex adds a cubic curve to (x, y). As the first vertex of a
// shape it only moves the pen to (x, y).
func (s *Sketch) BezierVertex(c1x, c1y, c2x, c2y, x, y float64) {
	ex, ey := s.mapper(x, y)
	if s.cfg.Shape {
		s.cfg.Shape = false
		s.surf.MoveTo(ex, ey)
		return
	}
	ax, ay := s.mapper(c1x, c1y)
	bx, by := s.mapper(c2x, c2y)
	s.surf.BezierCurveTo(ax, ay, bx, by, ex, ey)
}

// EndShape paints the shape, closing it first when close is set.
func (s *Sketch) EndShape(close bool) {
	if close {
		s.surf.ClosePath()
	}
	s.paint()
	s.cfg.Shape = false
}
