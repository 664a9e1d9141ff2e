// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/surface/record"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.slept = append(c.slept, d)
	c.advance(d)
	return nil
}

// snapshotSurface is a recording surface that can hand out a fixed image.
type snapshotSurface struct {
	*record.Surface
	img image.Image
}

func (s snapshotSurface) Image() image.Image { return s.img }

func newRunner(t *testing.T, clock *fakeClock, opts ...Option) *Runner {
	t.Helper()
	r := New(sketch.New(record.New(10, 10)), opts...)
	r.now = clock.now
	r.sleep = clock.sleep
	return r
}

func TestRunFrameLimit(t *testing.T) {
	clock := newFakeClock()
	var setups int
	var frames []int
	r := newRunner(t, clock,
		WithSetup(func(*sketch.Sketch) error { setups++; return nil }),
		WithDraw(func(_ *sketch.Sketch, frame int) error {
			frames = append(frames, frame)
			return nil
		}),
		WithMaxFrames(3),
	)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if setups != 1 {
		t.Errorf("setup called %d times, want 1", setups)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(frames, want) {
		t.Errorf("frames = %v, want %v", frames, want)
	}
	if r.Frames() != 3 || r.Dropped() != 0 {
		t.Errorf("Frames() = %d, Dropped() = %d, want 3, 0", r.Frames(), r.Dropped())
	}
	want := []time.Duration{40 * time.Millisecond, 40 * time.Millisecond, 40 * time.Millisecond}
	if !reflect.DeepEqual(clock.slept, want) {
		t.Errorf("slept = %v, want %v", clock.slept, want)
	}
}

func TestRunDropsLateFrames(t *testing.T) {
	clock := newFakeClock()
	var frames []int
	r := newRunner(t, clock,
		WithDraw(func(_ *sketch.Sketch, frame int) error {
			frames = append(frames, frame)
			if frame == 0 {
				clock.advance(100 * time.Millisecond)
			}
			return nil
		}),
		WithMaxFrames(4),
	)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []int{0, 2, 3}; !reflect.DeepEqual(frames, want) {
		t.Errorf("frames = %v, want %v", frames, want)
	}
	if r.Frames() != 3 || r.Dropped() != 1 {
		t.Errorf("Frames() = %d, Dropped() = %d, want 3, 1", r.Frames(), r.Dropped())
	}
}

func TestRunFrameRate(t *testing.T) {
	clock := newFakeClock()
	r := newRunner(t, clock, WithFrameRate(50), WithMaxFrames(1))
	if r.FrameRate() != 50 {
		t.Fatalf("FrameRate() = %d, want 50", r.FrameRate())
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []time.Duration{20 * time.Millisecond}; !reflect.DeepEqual(clock.slept, want) {
		t.Errorf("slept = %v, want %v", clock.slept, want)
	}

	if got := New(nil, WithFrameRate(0)).FrameRate(); got != DefaultFrameRate {
		t.Errorf("FrameRate() = %d, want default %d", got, DefaultFrameRate)
	}
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		opts   []Option
		wantIs error
		frames int
	}{
		{
			name:   "setup",
			opts:   []Option{WithSetup(func(*sketch.Sketch) error { return boom })},
			wantIs: boom,
		},
		{
			name: "draw",
			opts: []Option{WithDraw(func(_ *sketch.Sketch, frame int) error {
				if frame == 2 {
					return boom
				}
				return nil
			})},
			wantIs: boom,
			frames: 2,
		},
		{
			name: "stop from draw",
			opts: []Option{WithDraw(func(_ *sketch.Sketch, frame int) error {
				if frame == 1 {
					return ErrStop
				}
				return nil
			})},
			frames: 1,
		},
		{
			name:   "stop from setup",
			opts:   []Option{WithSetup(func(*sketch.Sketch) error { return ErrStop })},
			frames: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRunner(t, newFakeClock(), append(tt.opts, WithMaxFrames(10))...)
			err := r.Run(context.Background())
			if tt.wantIs == nil {
				if err != nil {
					t.Fatalf("Run() error = %v, want nil", err)
				}
			} else if !errors.Is(err, tt.wantIs) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantIs)
			}
			if r.Frames() != tt.frames {
				t.Errorf("Frames() = %d, want %d", r.Frames(), tt.frames)
			}
		})
	}
}

func TestRunContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(t, newFakeClock(), WithMaxFrames(10))
	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if r.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", r.Frames())
	}
}

func TestRunCancelDuringSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(sketch.New(record.New(10, 10)),
		WithFrameRate(1),
		WithDraw(func(*sketch.Sketch, int) error {
			cancel()
			return nil
		}),
	)

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestRunNoSnapshot(t *testing.T) {
	r := newRunner(t, newFakeClock(), WithPresenter(PresenterFunc(
		func(context.Context, int, image.Image) error { return nil })))
	if err := r.Run(context.Background()); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("Run() error = %v, want ErrNoSnapshot", err)
	}
}

func TestRunPresents(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	surf := snapshotSurface{Surface: record.New(10, 10), img: img}

	var got []int
	r := New(sketch.New(surf),
		WithMaxFrames(3),
		WithPresenter(PresenterFunc(func(_ context.Context, frame int, frameImg image.Image) error {
			if frameImg != img {
				t.Errorf("frame %d presented %v, want the surface image", frame, frameImg)
			}
			got = append(got, frame)
			if frame == 1 {
				return ErrStop
			}
			return nil
		})),
	)
	clock := newFakeClock()
	r.now, r.sleep = clock.now, clock.sleep

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("presented frames = %v, want %v", got, want)
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	p := &PNGSequence{Dir: dir}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	for frame := range 2 {
		if err := p.Present(context.Background(), frame, img); err != nil {
			t.Fatalf("Present(%d) error = %v", frame, err)
		}
	}

	if got, want := p.Path(1), filepath.Join(dir, "frame-00001.png"); got != want {
		t.Errorf("Path(1) = %q, want %q", got, want)
	}

	f, err := os.Open(p.Path(1))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if r, _, _, a := decoded.At(1, 1).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,1) = %v, want opaque red", decoded.At(1, 1))
	}
}

func TestPNGSequencePattern(t *testing.T) {
	p := &PNGSequence{Dir: "x", Pattern: "f%d.png"}
	if got, want := p.Path(7), filepath.Join("x", "f7.png"); got != want {
		t.Errorf("Path(7) = %q, want %q", got, want)
	}
}
