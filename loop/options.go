// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "github.com/gogpu/sketch"

// DefaultFrameRate is the frame rate used when none is configured.
const DefaultFrameRate = 25

// SetupFunc prepares the sketch before the first frame.
type SetupFunc func(sk *sketch.Sketch) error

// DrawFunc draws frame number frame. Frame numbers count scheduled frames,
// including dropped ones.
type DrawFunc func(sk *sketch.Sketch, frame int) error

// Option configures a Runner.
type Option func(*Runner)

// WithSetup sets the function called once before the first frame.
func WithSetup(fn SetupFunc) Option {
	return func(r *Runner) { r.setup = fn }
}

// WithDraw sets the per-frame draw function.
func WithDraw(fn DrawFunc) Option {
	return func(r *Runner) { r.draw = fn }
}

// WithFrameRate sets the frames per second. Non-positive values are
// ignored.
func WithFrameRate(fps int) Option {
	return func(r *Runner) {
		if fps > 0 {
			r.frameRate = fps
		}
	}
}

// WithMaxFrames stops the loop after n scheduled frames. Zero or less
// runs until the context is canceled.
func WithMaxFrames(n int) Option {
	return func(r *Runner) { r.maxFrames = n }
}

// WithPresenter sets where finished frames go. Without a presenter frames
// are drawn and discarded.
func WithPresenter(p Presenter) Option {
	return func(r *Runner) { r.presenter = p }
}
