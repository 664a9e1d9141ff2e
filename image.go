package sketch

import (
	"context"
	"image"

	"golang.org/x/sync/errgroup"
)

// maxParallelLoads bounds LoadImages concurrency.
const maxParallelLoads = 4

// ImageLoader fetches and decodes an image. imageio.Loader implements it.
type ImageLoader interface {
	Load(ctx context.Context, src string) (image.Image, error)
}

// Image draws img at (x, y) interpreted per the image mode. The optional
// size gives the width and height in logical units; the width defaults to
// the natural width and the height keeps the aspect ratio. In
// ImageCorners mode the size is the opposite corner; with fewer than two
// size values there is no corner, so the image is drawn as in ImageCorner
// mode. A nil or empty image is ignored.
func (s *Sketch) Image(img image.Image, x, y float64, size ...float64) {
	if img == nil || img.Bounds().Empty() {
		return
	}
	b := img.Bounds()
	nw, nh := float64(b.Dx()), float64(b.Dy())

	px, py := s.mapper(x, y)
	w := nw * s.scale
	if len(size) > 0 {
		w = size[0] * s.scale
	}
	h := w * nh / nw
	if len(size) > 1 {
		h = size[1] * s.scale
	}

	switch s.cfg.ImageMode {
	case ImageCorner:
		s.surf.DrawImage(img, px, py, w, h)
	case ImageCorners:
		if len(size) < 2 {
			Logger().Debug("sketch: corners image without opposite corner, drawing at corner", "size", len(size))
			s.surf.DrawImage(img, px, py, w, h)
			return
		}
		x2, y2 := s.mapper(size[0], size[1])
		s.surf.DrawImage(img, px, py, x2-px, y2-py)
	default:
		s.surf.DrawImage(img, px-w/2, py-h/2, w, h)
	}
}

// LoadImage loads src with the image loader. It returns nil when loading
// fails or ctx is canceled; the failure is logged.
func (s *Sketch) LoadImage(ctx context.Context, src string) image.Image {
	img, err := s.loader.Load(ctx, src)
	if err != nil {
		Logger().Warn("sketch: image load failed", "src", src, "err", err)
		return nil
	}
	return img
}

// LoadImageAsync loads src on a new goroutine. The returned channel
// yields exactly one value, nil on failure, and is then closed.
func (s *Sketch) LoadImageAsync(ctx context.Context, src string) <-chan image.Image {
	ch := make(chan image.Image, 1)
	go func() {
		defer close(ch)
		ch <- s.LoadImage(ctx, src)
	}()
	return ch
}

// LoadImages loads several sources concurrently. The result has one entry
// per source in order, nil where loading failed.
func (s *Sketch) LoadImages(ctx context.Context, srcs ...string) []image.Image {
	out := make([]image.Image, len(srcs))
	var g errgroup.Group
	g.SetLimit(maxParallelLoads)
	for i, src := range srcs {
		g.Go(func() error {
			out[i] = s.LoadImage(ctx, src)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
