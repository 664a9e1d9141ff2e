// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package imageio loads and decodes images from files, http(s) URLs and
// data URLs.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered on
// import. A Loader is safe for concurrent use.
//
//	l := imageio.NewLoader(imageio.WithBaseDir("assets"))
//	img, err := l.Load(ctx, "sprite.png")
package imageio

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/sketch/internal/logging"
)

// DefaultMaxBytes limits how much encoded data a Loader reads per image.
const DefaultMaxBytes = 64 << 20

var (
	// ErrUnsupportedSource is returned for URL schemes the loader does not
	// handle.
	ErrUnsupportedSource = errors.New("imageio: unsupported source")

	// ErrTooLarge is returned when the encoded image exceeds the limit.
	ErrTooLarge = errors.New("imageio: image exceeds size limit")
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return "imageio: GET " + e.URL + ": status " + strconv.Itoa(e.StatusCode)
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithMaxBytes sets the per-image limit on encoded data. Non-positive
// values keep the default.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// WithBaseDir resolves relative file paths against dir.
func WithBaseDir(dir string) Option {
	return func(l *Loader) { l.baseDir = dir }
}

// Loader fetches and decodes images.
type Loader struct {
	client   *http.Client
	maxBytes int64
	baseDir  string
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client:   http.DefaultClient,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches src and decodes it. src is a file path, a file:// URL, an
// http(s) URL or a data URL.
func (l *Loader) Load(ctx context.Context, src string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", describe(src), err)
	}
	logging.Logger().Debug("imageio: loaded", "src", describe(src), "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

func (l *Loader) fetch(ctx context.Context, src string) ([]byte, error) {
	scheme, _, hasScheme := strings.Cut(src, ":")
	// A single letter before the colon is a Windows drive, not a scheme.
	if !hasScheme || len(scheme) == 1 {
		return l.readFile(src)
	}

	switch strings.ToLower(scheme) {
	case "data":
		return l.decodeDataURL(src)
	case "http", "https":
		return l.get(ctx, src)
	case "file":
		u, err := url.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("imageio: %w", err)
		}
		return l.readFile(filepath.FromSlash(u.Path))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, scheme)
	}
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()
	return l.readLimited(f, path)
}

func (l *Loader) get(ctx context.Context, src string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: src, StatusCode: resp.StatusCode}
	}
	if resp.ContentLength > l.maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, src, resp.ContentLength)
	}
	return l.readLimited(resp.Body, src)
}

func (l *Loader) readLimited(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imageio: read %s: %w", name, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, name)
	}
	return data, nil
}

// decodeDataURL handles "data:[<mediatype>][;base64],<data>".
func (l *Loader) decodeDataURL(src string) ([]byte, error) {
	meta, payload, ok := strings.Cut(src[len("data:"):], ",")
	if !ok {
		return nil, errors.New("imageio: malformed data URL")
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		var err error
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			data, err = base64.RawStdEncoding.DecodeString(payload)
		}
		if err != nil {
			return nil, fmt.Errorf("imageio: data URL: %w", err)
		}
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("imageio: data URL: %w", err)
		}
		data = []byte(s)
	}

	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: data URL", ErrTooLarge)
	}
	return data, nil
}

// describe shortens data URLs for messages.
func describe(src string) string {
	if strings.HasPrefix(src, "data:") && len(src) > 32 {
		return src[:32] + "..."
	}
	return src
}
