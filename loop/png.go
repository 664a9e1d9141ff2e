// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// DefaultPattern names the files written by PNGSequence.
const DefaultPattern = "frame-%05d.png"

// PNGSequence is a Presenter that writes every frame to a numbered PNG
// file.
type PNGSequence struct {
	// Dir is the output directory. It is created on the first frame.
	Dir string

	// Pattern is a fmt pattern taking the frame number. Empty means
	// DefaultPattern.
	Pattern string

	made bool
}

// Path returns the file name used for frame.
func (p *PNGSequence) Path(frame int) string {
	pattern := p.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(p.Dir, fmt.Sprintf(pattern, frame))
}

// Present encodes img into the file for frame.
func (p *PNGSequence) Present(_ context.Context, frame int, img image.Image) error {
	if !p.made {
		if err := os.MkdirAll(p.Dir, 0o755); err != nil {
			return fmt.Errorf("loop: create %s: %w", p.Dir, err)
		}
		p.made = true
	}

	name := p.Path(frame)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("loop: create frame: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("loop: encode %s: %w", name, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("loop: write %s: %w", name, err)
	}
	return f.Close()
}
