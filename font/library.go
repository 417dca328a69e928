package font

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/spx"
)

// Library is an explicit handle for a font backend. It tracks every Face
// opened through it and closes them all on Close.
//
// Library is safe for concurrent use.
type Library struct {
	config  config
	backend Backend

	mu     sync.Mutex
	faces  map[*Face]struct{}
	closed bool
}

// NewLibrary creates a library using the configured backend.
// It returns ErrUnknownBackend if no backend has the requested name.
func NewLibrary(opts ...Option) (*Library, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, ok := getBackend(cfg.backend)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
	}

	spx.Logger().Info("font: library opened", "backend", cfg.backend, "dpi", cfg.dpi)
	return &Library{
		config:  cfg,
		backend: b,
		faces:   make(map[*Face]struct{}),
	}, nil
}

// Backend returns the name of the library's backend.
func (l *Library) Backend() string {
	return l.config.backend
}

// Open reads and parses a font file.
func (l *Library) Open(path string) (*Face, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return l.OpenBytes(data)
}

// OpenBytes parses font data (TTF or OTF). The data is not retained.
func (l *Library) OpenBytes(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return nil, ErrLibraryClosed
	}

	parsed, err := l.backend.Parse(data)
	if err != nil {
		return nil, err
	}

	f := &Face{lib: l, parsed: parsed, name: parsed.Name()}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, ErrLibraryClosed
	}
	l.faces[f] = struct{}{}
	return f, nil
}

// Load opens a font file and renders it at size pixels; a size of 0
// selects DefaultSize. The returned font owns its face: closing the font
// releases it.
func (l *Library) Load(path string, size float64) (*spx.Font, error) {
	if size == 0 {
		size = DefaultSize
	}
	f, err := l.Open(path)
	if err != nil {
		return nil, err
	}
	font, err := f.Render(size)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	spx.Logger().Info("font: loaded", "path", path, "name", f.Name(), "size", size)
	return font, nil
}

// Close closes every face still open and releases the library. Further
// calls return nil.
func (l *Library) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	faces := l.faces
	l.faces = nil
	l.mu.Unlock()

	for f := range faces {
		f.release()
	}
	spx.Logger().Info("font: library closed", "faces", len(faces))
	return nil
}

// forget drops f from the open set.
func (l *Library) forget(f *Face) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.faces, f)
}
