// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package imageio

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func checkSize(t *testing.T, img image.Image, w, h int) {
	t.Helper()
	if img == nil {
		t.Fatal("image is nil")
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), encodePNG(t, 4, 3), 0o600); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	img, err := NewLoader().Load(ctx, filepath.Join(dir, "a.png"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSize(t, img, 4, 3)

	img, err = NewLoader(WithBaseDir(dir)).Load(ctx, "a.png")
	if err != nil {
		t.Fatalf("Load relative: %v", err)
	}
	checkSize(t, img, 4, 3)

	img, err = NewLoader().Load(ctx, "file://"+filepath.ToSlash(filepath.Join(dir, "a.png")))
	if err != nil {
		t.Fatalf("Load file URL: %v", err)
	}
	checkSize(t, img, 4, 3)
}

func TestLoadBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 5, 2))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "a.bmp")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	img, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSize(t, img, 5, 2)
}

func TestLoadDataURL(t *testing.T) {
	src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(encodePNG(t, 2, 2))
	img, err := NewLoader().Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSize(t, img, 2, 2)

	if _, err := NewLoader().Load(context.Background(), "data:image/png;base64"); err == nil {
		t.Error("malformed data URL should fail")
	}
}

func TestLoadHTTP(t *testing.T) {
	payload := encodePNG(t, 6, 6)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	l := NewLoader(WithHTTPClient(srv.Client()))
	img, err := l.Load(context.Background(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	checkSize(t, img, 6, 6)

	_, err = l.Load(context.Background(), srv.URL+"/missing.png")
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Errorf("err = %v, want StatusError 404", err)
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	big := filepath.Join(dir, "big.png")
	if err := os.WriteFile(big, encodePNG(t, 64, 64), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		loader *Loader
		src    string
		target error
	}{
		{"missing file", NewLoader(), filepath.Join(dir, "none.png"), os.ErrNotExist},
		{"unsupported scheme", NewLoader(), "ftp://example.com/a.png", ErrUnsupportedSource},
		{"not an image", NewLoader(), bad, image.ErrFormat},
		{"too large", NewLoader(WithMaxBytes(10)), big, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.loader.Load(ctx, tt.src)
			if img != nil {
				t.Error("image should be nil on error")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLoader().Load(ctx, "whatever.png"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
