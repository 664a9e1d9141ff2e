// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/sketch/internal/logging"
)

// Factory creates a surface with the requested size. Sizes are validated
// before the factory runs.
type Factory func(opts Options) (Surface, error)

type backend struct {
	priority  int
	factory   Factory
	available func() bool
}

var (
	mu       sync.RWMutex
	backends = make(map[string]backend)
)

// Register makes a backend selectable by name. Backend packages call it
// from init:
//
//	func init() {
//		surface.Register("raster", 10, func(opts surface.Options) (surface.Surface, error) {
//			return New(opts.Width, opts.Height)
//		}, nil)
//	}
//
// Higher priorities are preferred by New. A nil available means the
// backend is always usable. Registering an existing name replaces it.
func Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	mu.Lock()
	defer mu.Unlock()
	backends[name] = backend{priority: priority, factory: factory, available: available}
}

// Available returns the names of the usable backends, best first. Equal
// priorities are ordered by name.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(backends))
	for name, b := range backends {
		if b.available() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := backends[names[i]].priority, backends[names[j]].priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// New creates a width x height surface on the best available backend. A
// backend whose factory fails is skipped in favor of the next one.
func New(width, height int) (Surface, error) {
	names := Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		s, err := NewByName(name, width, height)
		if err == nil {
			logging.Logger().Debug("surface: backend selected", "backend", name)
			return s, nil
		}
		logging.Logger().Debug("surface: backend failed", "backend", name, "err", err)
		lastErr = err
	}
	return nil, lastErr
}

// NewByName creates a width x height surface on the named backend.
func NewByName(name string, width, height int) (Surface, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions %dx%d", width, height)
	}
	return b.factory(Options{Width: width, Height: height})
}

// ErrNoBackendAvailable is returned by New when no registered backend is
// usable.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
