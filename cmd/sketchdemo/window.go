//go:build !sdl

package main

import (
	"errors"

	"github.com/gogpu/sketch/loop"
	"github.com/gogpu/sketch/surface"
)

func newWindow(string, surface.Surface) (loop.Presenter, func() error, error) {
	return nil, nil, errors.New("window output needs a build with -tags sdl")
}
