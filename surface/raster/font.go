// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/gg/cache"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFamily is used when a requested family is not registered.
const DefaultFamily = "Go"

// faceCacheCapacity is the per-shard capacity of the face cache.
const faceCacheCapacity = 64

// genericFamilies maps CSS generic family names onto registered families.
var genericFamilies = map[string]string{
	"sans-serif": "Go",
	"serif":      "Go Medium",
	"system-ui":  "Go",
	"monospace":  "Go Mono",
	"arial":      "Go",
	"helvetica":  "Go",
	"courier":    "Go Mono",
}

// fontEntry parses its data on first use.
type fontEntry struct {
	once sync.Once
	data []byte
	src  *text.FontSource
	err  error
}

func (e *fontEntry) source() (*text.FontSource, error) {
	e.once.Do(func() {
		e.src, e.err = text.NewFontSource(e.data)
		e.data = nil
	})
	return e.src, e.err
}

// FontRegistry maps family names to font sources and caches faces by
// family and size. It is safe for concurrent use.
type FontRegistry struct {
	mu       sync.RWMutex
	families map[string]*fontEntry
	faces    *cache.ShardedCache[string, text.Face]
}

// NewFontRegistry returns a registry holding the Go font family.
func NewFontRegistry() *FontRegistry {
	r := &FontRegistry{
		families: make(map[string]*fontEntry),
		faces:    cache.NewSharded[string, text.Face](faceCacheCapacity, cache.StringHasher),
	}
	r.families["go"] = &fontEntry{data: goregular.TTF}
	r.families["go bold"] = &fontEntry{data: gobold.TTF}
	r.families["go italic"] = &fontEntry{data: goitalic.TTF}
	r.families["go medium"] = &fontEntry{data: gomedium.TTF}
	r.families["go mono"] = &fontEntry{data: gomono.TTF}
	return r
}

var (
	defaultFontsOnce sync.Once
	defaultFonts     *FontRegistry
)

// DefaultFonts returns the process-wide font registry.
func DefaultFonts() *FontRegistry {
	defaultFontsOnce.Do(func() {
		defaultFonts = NewFontRegistry()
	})
	return defaultFonts
}

// RegisterFont adds a TrueType/OpenType font to the default registry.
func RegisterFont(family string, data []byte) error {
	return DefaultFonts().Register(family, data)
}

// RegisterFontFile reads a font file into the default registry.
func RegisterFontFile(family, path string) error {
	return DefaultFonts().RegisterFile(family, path)
}

// Register parses data and stores it under family, replacing any earlier
// registration.
func (r *FontRegistry) Register(family string, data []byte) error {
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("raster: register font %q: %w", family, err)
	}
	r.store(family, src)
	return nil
}

// RegisterFile reads and registers a font file.
func (r *FontRegistry) RegisterFile(family, path string) error {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return fmt.Errorf("raster: register font %q: %w", family, err)
	}
	r.store(family, src)
	return nil
}

func (r *FontRegistry) store(family string, src *text.FontSource) {
	e := &fontEntry{src: src}
	e.once.Do(func() {})

	key := normalizeFamily(family)
	r.mu.Lock()
	r.families[key] = e
	r.mu.Unlock()

	// Drop faces cached under the old registration.
	r.faces.Clear()
}

// Families returns the registered family keys.
func (r *FontRegistry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.families))
	for k := range r.families {
		out = append(out, k)
	}
	return out
}

// Face returns a face for family at size pixels, or nil when size is not
// positive or the font cannot be parsed.
func (r *FontRegistry) Face(family string, size float64) text.Face {
	if size <= 0 {
		return nil
	}
	e := r.lookup(family)
	if e == nil {
		return nil
	}
	key := normalizeFamily(family) + "|" + strconv.FormatFloat(size, 'f', -1, 64)
	return r.faces.GetOrCreate(key, func() text.Face {
		src, err := e.source()
		if err != nil {
			logger().Debug("raster: font parse failed", "family", family, "err", err)
			return nil
		}
		return src.Face(size)
	})
}

func (r *FontRegistry) lookup(family string) *fontEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// A CSS family list picks the first registered entry.
	for _, name := range strings.Split(family, ",") {
		key := normalizeFamily(name)
		if e, ok := r.families[key]; ok {
			return e
		}
		if g, ok := genericFamilies[key]; ok {
			if e, ok := r.families[normalizeFamily(g)]; ok {
				return e
			}
		}
	}
	return r.families[normalizeFamily(DefaultFamily)]
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(family), `"'`))
}
