package font

import (
	"fmt"
	"sync"

	"github.com/gogpu/spx"
)

// Face is a parsed font file. It renders glyph tables at any size until
// it, or its Library, is closed.
type Face struct {
	lib  *Library
	name string

	mu     sync.Mutex
	parsed Parsed // nil once closed
}

// Name returns the font family name.
func (f *Face) Name() string {
	return f.name
}

// Render rasterizes the ASCII glyphs of the face at size pixels (scaled
// by the library DPI) into an immutable font. Glyphs the face lacks are
// left empty.
//
// The returned font holds f as its face handle; closing the font closes f.
func (f *Face) Render(size float64) (*spx.Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	f.mu.Lock()
	parsed := f.parsed
	f.mu.Unlock()
	if parsed == nil {
		return nil, ErrFaceClosed
	}

	r, err := parsed.Rasterizer(size, RenderOptions{
		DPI:     f.lib.config.dpi,
		Hinting: f.lib.config.hinting,
	})
	if err != nil {
		return nil, err
	}
	glyphs, missing := renderGlyphs(r)
	if err := r.Close(); err != nil {
		return nil, err
	}

	log := spx.Logger()
	if len(missing) > 0 {
		log.Warn("font: glyphs missing from face",
			"name", f.name,
			"count", len(missing),
			"runes", string(missing))
	}
	log.Debug("font: rendered", "name", f.name, "size", size, "missing", len(missing))

	return spx.NewFont(f, glyphs), nil
}

// Close releases the face. Further calls return nil.
func (f *Face) Close() error {
	if !f.release() {
		return nil
	}
	f.lib.forget(f)
	return nil
}

// release drops the parsed font and reports whether f was still open.
func (f *Face) release() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.parsed == nil {
		return false
	}
	if c, ok := f.parsed.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			spx.Logger().Warn("font: closing face", "name", f.name, "err", err)
		}
	}
	f.parsed = nil
	return true
}
