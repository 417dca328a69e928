package font

// DefaultSize is the pixel size used by [Library.Load] when none is given.
const DefaultSize = 12

// Option configures a Library.
type Option func(*config)

// config holds the Library configuration.
type config struct {
	backend string
	dpi     float64
	hinting bool
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		backend: defaultBackendName,
		dpi:     72,
	}
}

// WithBackend selects the parser backend by name.
// Default: "ximage".
func WithBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithDPI sets the resolution that converts sizes to pixels. At the
// default of 72, a size is a pixel size. Non-positive values are ignored.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting enables glyph outline hinting where the backend supports it.
// Default: false.
func WithHinting(enabled bool) Option {
	return func(c *config) {
		c.hinting = enabled
	}
}
