package sketch

import "github.com/gogpu/sketch/surface"

// Push saves the native style and the drawing state. Every Push must be
// matched by a Pop.
func (s *Sketch) Push() {
	saved := s.cfg
	saved.style = s.surf.Style()
	s.stack = append(s.stack, saved)
	s.surf.Save()
	s.cfg.clipLayer = false
}

// Pop restores the state saved by the matching Push. Pop with nothing
// pushed does nothing.
func (s *Sketch) Pop() {
	n := len(s.stack)
	if n == 0 {
		Logger().Debug("sketch: pop on empty stack ignored")
		return
	}
	if s.cfg.clipLayer {
		s.surf.Restore()
	}
	s.surf.Restore()
	s.cfg = s.stack[n-1]
	s.cfg.style = surface.Style{}
	s.stack = s.stack[:n-1]
}

// Clip restricts drawing and Background to a rectangle in logical units.
// It replaces any clip set since the last Push rather than intersecting
// with it. A zero w or h extends the clip over the whole surface on that
// axis, so Clip(0, 0, 0, 0) removes the clip.
func (s *Sketch) Clip(x, y, w, h float64) {
	st := s.surf.Style()
	if s.cfg.clipLayer {
		s.surf.Restore()
		s.cfg.clipLayer = false
	}

	r := ClipRect{X: x, Y: y, W: w, H: h}
	if r.IsZero() {
		s.cfg.Clip = ClipRect{}
	} else {
		s.cfg.Clip = r
		s.openClip(r)
		s.cfg.clipLayer = true
	}
	surface.ApplyStyle(s.surf, st)
}

// Unclip removes the clip set at the current push level.
func (s *Sketch) Unclip() { s.Clip(0, 0, 0, 0) }

// openClip saves a surface level holding the clip for r.
func (s *Sketch) openClip(r ClipRect) {
	x, y, w, h := s.clipDevice(r)
	s.surf.Save()
	s.surf.ClipRect(x, y, w, h)
}

// clipDevice resolves r to device space.
func (s *Sketch) clipDevice(r ClipRect) (x, y, w, h float64) {
	dw, dh := s.surf.Size()
	x, y = s.mapper(r.X, r.Y)
	w, h = r.W*s.scale, r.H*s.scale
	if r.W == 0 {
		x, w = 0, float64(dw)
	}
	if r.H == 0 {
		y, h = 0, float64(dh)
	}
	return x, y, w, h
}
