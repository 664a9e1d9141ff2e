//go:build sdl

package main

import (
	"runtime"

	"github.com/gogpu/sketch/loop"
	"github.com/gogpu/sketch/loop/sdlview"
	"github.com/gogpu/sketch/surface"
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func newWindow(title string, surf surface.Surface) (loop.Presenter, func() error, error) {
	w, h := surf.Size()
	win, err := sdlview.New(title, w, h)
	if err != nil {
		return nil, nil, err
	}
	return win, win.Close, nil
}
