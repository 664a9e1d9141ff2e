// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"reflect"
	"testing"
)

// sizedSurface satisfies Surface for registry tests; only Size is callable.
type sizedSurface struct {
	Surface
	w, h int
}

func (s *sizedSurface) Size() (int, int) { return s.w, s.h }

func sizedFactory(opts Options) (Surface, error) {
	return &sizedSurface{w: opts.Width, h: opts.Height}, nil
}

// isolate swaps in an empty backend table for the duration of the test.
func isolate(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := backends
	backends = make(map[string]backend)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		backends = saved
		mu.Unlock()
	})
}

func TestAvailableOrder(t *testing.T) {
	isolate(t)
	Register("low", 10, sizedFactory, nil)
	Register("high", 100, sizedFactory, nil)
	Register("mid", 50, sizedFactory, nil)
	Register("also-mid", 50, sizedFactory, nil)
	Register("hidden", 200, sizedFactory, func() bool { return false })

	want := []string{"high", "also-mid", "mid", "low"}
	if got := Available(); !reflect.DeepEqual(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestRegisterReplaces(t *testing.T) {
	isolate(t)
	Register("a", 10, sizedFactory, nil)
	Register("b", 20, sizedFactory, nil)
	Register("a", 30, sizedFactory, nil)

	if got := Available(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Available() = %v, want [a b]", got)
	}
}

func TestNewPicksBest(t *testing.T) {
	isolate(t)
	Register("small", 1, func(Options) (Surface, error) { return &sizedSurface{w: 1, h: 1}, nil }, nil)
	Register("sized", 50, sizedFactory, nil)

	s, err := New(100, 80)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w, h := s.Size(); w != 100 || h != 80 {
		t.Errorf("size = %dx%d, want 100x80", w, h)
	}
}

func TestNewFallsBackOnFactoryError(t *testing.T) {
	isolate(t)
	failure := errors.New("creation failed")
	Register("failing", 100, func(Options) (Surface, error) { return nil, failure }, nil)

	if _, err := New(10, 10); !errors.Is(err, failure) {
		t.Errorf("New with only a failing backend = %v, want %v", err, failure)
	}

	Register("working", 10, sizedFactory, nil)
	s, err := New(10, 10)
	if err != nil {
		t.Fatalf("New should fall back to the working backend: %v", err)
	}
	if w, _ := s.Size(); w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
}

func TestNewNoBackend(t *testing.T) {
	isolate(t)
	Register("off", 10, sizedFactory, func() bool { return false })

	if _, err := New(10, 10); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("New() = %v, want ErrNoBackendAvailable", err)
	}
}

func TestNewByNameErrors(t *testing.T) {
	isolate(t)
	called := false
	Register("counted", 50, func(opts Options) (Surface, error) {
		called = true
		return sizedFactory(opts)
	}, nil)
	Register("off", 50, sizedFactory, func() bool { return false })

	var notFound *BackendNotFoundError
	if _, err := NewByName("vulkan", 10, 10); !errors.As(err, &notFound) || notFound.Name != "vulkan" {
		t.Errorf("unknown backend error = %v", err)
	}
	var unavailable *BackendUnavailableError
	if _, err := NewByName("off", 10, 10); !errors.As(err, &unavailable) {
		t.Errorf("unavailable backend error = %v", err)
	}

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewByName("counted", tt.w, tt.h); err == nil {
				t.Error("expected error for invalid dimensions")
			}
		})
	}
	if called {
		t.Error("factory called for invalid dimensions")
	}

	if _, err := NewByName("counted", 3, 4); err != nil || !called {
		t.Errorf("NewByName = %v, called = %v", err, called)
	}
}

func TestBackendErrors(t *testing.T) {
	if msg := (&BackendNotFoundError{Name: "vulkan"}).Error(); msg != "surface: backend not found: vulkan" {
		t.Errorf("error message = %q, unexpected format", msg)
	}
	if msg := (&BackendUnavailableError{Name: "metal"}).Error(); msg != "surface: backend unavailable: metal" {
		t.Errorf("error message = %q, unexpected format", msg)
	}
}
