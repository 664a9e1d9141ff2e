// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/logging"
	"github.com/gogpu/sketch/surface"
)

// dropWarnEvery is how many dropped frames pass between warnings.
const dropWarnEvery = 100

// ErrStop may be returned by a DrawFunc or a Presenter to end the loop
// without an error.
var ErrStop = errors.New("loop: stop")

// ErrNoSnapshot is returned by Run when a presenter is set but the
// sketch surface cannot hand out its pixels.
var ErrNoSnapshot = errors.New("loop: surface does not implement surface.Snapshotter")

// Presenter receives finished frames.
type Presenter interface {
	// Present shows or stores img, the surface contents after frame was
	// drawn. img is only valid until Present returns.
	Present(ctx context.Context, frame int, img image.Image) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(ctx context.Context, frame int, img image.Image) error

// Present calls f.
func (f PresenterFunc) Present(ctx context.Context, frame int, img image.Image) error {
	return f(ctx, frame, img)
}

// Runner drives a sketch frame by frame.
//
// A Runner calls Setup, Draw and Present from the goroutine running Run,
// so the sketch needs no locking. Frames and Dropped may be read from any
// goroutine.
type Runner struct {
	sk        *sketch.Sketch
	setup     SetupFunc
	draw      DrawFunc
	presenter Presenter
	frameRate int
	maxFrames int

	drawn   atomic.Int64
	dropped atomic.Int64

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Runner for sk.
func New(sk *sketch.Sketch, opts ...Option) *Runner {
	r := &Runner{
		sk:        sk,
		frameRate: DefaultFrameRate,
		now:       time.Now,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FrameRate returns the configured frames per second.
func (r *Runner) FrameRate() int { return r.frameRate }

// Frames returns the number of frames drawn so far.
func (r *Runner) Frames() int { return int(r.drawn.Load()) }

// Dropped returns the number of frames skipped because their slot had
// passed.
func (r *Runner) Dropped() int { return int(r.dropped.Load()) }

// Run calls Setup and then draws frames until ctx is canceled, the frame
// limit is reached, or Draw or Present fails. It returns nil when the
// frame limit is reached or ErrStop is returned, and ctx.Err() when the
// context ends the loop.
func (r *Runner) Run(ctx context.Context) error {
	var snap surface.Snapshotter
	if r.presenter != nil {
		var ok bool
		if snap, ok = r.sk.Surface().(surface.Snapshotter); !ok {
			return ErrNoSnapshot
		}
	}

	log := logging.Logger()
	log.Info("loop: start", "fps", r.frameRate, "max_frames", r.maxFrames)

	err := r.run(ctx, snap)

	log.Info("loop: stop", "frames", r.Frames(), "dropped", r.Dropped(), "err", err)
	return err
}

func (r *Runner) run(ctx context.Context, snap surface.Snapshotter) error {
	if r.setup != nil {
		if err := r.setup(r.sk); err != nil {
			return stopErr(fmt.Errorf("loop: setup: %w", err))
		}
	}

	period := time.Second / time.Duration(r.frameRate)
	next := r.now()
	for frame := 0; r.maxFrames <= 0 || frame < r.maxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		next = next.Add(period)
		if !r.now().Before(next) {
			r.drop(frame)
			continue
		}

		if r.draw != nil {
			if err := r.draw(r.sk, frame); err != nil {
				return stopErr(fmt.Errorf("loop: draw frame %d: %w", frame, err))
			}
		}
		r.drawn.Add(1)

		if snap != nil {
			if err := r.presenter.Present(ctx, frame, snap.Image()); err != nil {
				return stopErr(fmt.Errorf("loop: present frame %d: %w", frame, err))
			}
		}

		if d := next.Sub(r.now()); d > 0 {
			if err := r.sleep(ctx, d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) drop(frame int) {
	n := r.dropped.Add(1)
	if n%dropWarnEvery == 0 {
		logging.Logger().Warn("loop: frames dropped", "dropped", n, "frame", frame)
	}
}

// stopErr maps ErrStop to a clean exit.
func stopErr(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
