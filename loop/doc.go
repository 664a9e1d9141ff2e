// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loop runs a sketch as an animation: Setup once, then Draw at a
// fixed frame rate, handing every finished frame to a Presenter.
//
// # Quick Start
//
//	s, _ := raster.New(320, 240)
//	sk := sketch.New(s)
//	r := loop.New(sk,
//		loop.WithDraw(func(sk *sketch.Sketch, frame int) error {
//			sk.Background(sketch.Gray(0))
//			sk.Circle(float64(frame%320), 120, 40)
//			return nil
//		}),
//		loop.WithPresenter(&loop.PNGSequence{Dir: "frames"}),
//		loop.WithMaxFrames(100),
//	)
//	err := r.Run(ctx)
//
// # Timing
//
// Frames are scheduled on a fixed grid starting when Run begins. A frame
// whose slot has already passed is skipped rather than drawn late, so a
// slow Draw never makes the animation run behind wall time. Skipped frames
// are counted in Dropped.
package loop
