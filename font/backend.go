package font

import (
	"sort"
	"sync"

	"github.com/gogpu/spx"
)

// Backend is a font parsing backend.
// This abstraction allows swapping the library that reads font files.
type Backend interface {
	// Parse parses font data (TTF or OTF).
	Parse(data []byte) (Parsed, error)
}

// Parsed is a font parsed by a Backend.
type Parsed interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// Rasterizer prepares glyph rendering at a size.
	Rasterizer(size float64, opts RenderOptions) (Rasterizer, error)
}

// RenderOptions carries the Library settings into a backend.
type RenderOptions struct {
	DPI     float64
	Hinting bool
}

// Rasterizer renders single glyphs at a fixed size.
type Rasterizer interface {
	// Glyph renders the glyph for r. ok is false when the font has no
	// glyph for r.
	Glyph(r rune) (g spx.Glyph, ok bool)

	// Close releases the rasterizer.
	Close() error
}

// defaultBackendName is the name of the default backend.
const defaultBackendName = "ximage"

var (
	backendsMu sync.RWMutex
	backends   = map[string]Backend{
		"ximage": ximageBackend{},
		"gotext": gotextBackend{},
	}
)

// RegisterBackend registers a custom backend, replacing any backend
// already registered under name.
func RegisterBackend(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[name] = b
}

// Backends returns the names of the registered backends, sorted.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func getBackend(name string) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[name]
	return b, ok
}

// renderGlyphs fills a glyph table from r. It returns the printable ASCII
// characters r has no glyph for; control codes are expected to be absent.
func renderGlyphs(r Rasterizer) (glyphs [spx.GlyphCount]spx.Glyph, missing []rune) {
	for code := range rune(spx.GlyphCount) {
		g, ok := r.Glyph(code)
		if !ok {
			if code >= ' ' && code < 0x7f {
				missing = append(missing, code)
			}
			continue
		}
		glyphs[code] = g
	}
	return glyphs, missing
}
