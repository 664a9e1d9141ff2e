// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build sdl

// Package sdlview shows loop frames in an SDL2 window.
//
// The package needs cgo and the SDL2 development libraries, so it is only
// built with the sdl build tag:
//
//	go build -tags sdl ./cmd/sketchdemo
package sdlview

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/sketch/internal/logging"
	"github.com/gogpu/sketch/loop"
)

var (
	initOnce sync.Once
	initErr  error
)

func initSDL() error {
	initOnce.Do(func() {
		initErr = sdl.Init(sdl.INIT_VIDEO)
	})
	return initErr
}

// Window is a loop.Presenter that copies every frame into an SDL window.
// Present returns loop.ErrStop once the window is closed.
//
// SDL requires its calls to come from the thread that initialized it; run
// the loop on the main goroutine after runtime.LockOSThread, or inside
// sdl.Main.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	w, h     int
	buf      *image.NRGBA
}

// New opens a width x height window with the given title.
func New(title string, width, height int) (*Window, error) {
	if err := initSDL(); err != nil {
		return nil, fmt.Errorf("sdlview: init: %w", err)
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlview: create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("sdlview: create renderer: %w", err)
	}
	return &Window{window: window, renderer: renderer}, nil
}

// Present polls window events and shows img.
func (v *Window) Present(_ context.Context, frame int, img image.Image) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			logging.Logger().Info("sdlview: window closed", "frame", frame)
			return loop.ErrStop
		}
	}

	if err := v.ensureTexture(img.Bounds().Dx(), img.Bounds().Dy()); err != nil {
		return err
	}
	if err := v.upload(img); err != nil {
		return err
	}
	if err := v.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlview: clear: %w", err)
	}
	if err := v.renderer.Copy(v.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlview: copy: %w", err)
	}
	v.renderer.Present()
	return nil
}

// ensureTexture (re)creates the streaming texture when the frame size
// changes.
func (v *Window) ensureTexture(w, h int) error {
	if v.texture != nil && v.w == w && v.h == h {
		return nil
	}
	if v.texture != nil {
		_ = v.texture.Destroy()
		v.texture = nil
	}
	// ABGR8888 is R, G, B, A in memory order on little-endian hosts.
	tex, err := v.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(w), int32(h))
	if err != nil {
		return fmt.Errorf("sdlview: create texture: %w", err)
	}
	v.texture, v.w, v.h = tex, w, h
	v.buf = image.NewNRGBA(image.Rect(0, 0, w, h))
	return nil
}

func (v *Window) upload(img image.Image) error {
	src, ok := img.(*image.NRGBA)
	if !ok || src.Rect.Min != (image.Point{}) || src.Stride != 4*src.Rect.Dx() {
		draw.Draw(v.buf, v.buf.Rect, img, img.Bounds().Min, draw.Src)
		src = v.buf
	}

	pixels, pitch, err := v.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlview: lock texture: %w", err)
	}
	rowSize := v.w * 4
	for y := 0; y < v.h; y++ {
		copy(pixels[y*pitch:y*pitch+rowSize], src.Pix[y*src.Stride:y*src.Stride+rowSize])
	}
	v.texture.Unlock()
	return nil
}

// Close releases the window.
func (v *Window) Close() error {
	if v.texture != nil {
		_ = v.texture.Destroy()
	}
	if err := v.renderer.Destroy(); err != nil {
		return err
	}
	return v.window.Destroy()
}
