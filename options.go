package spx

// RasterOption configures an anti-aliased draw call.
// Use functional options to customize sampling.
//
// Example:
//
//	// Default 2x2 circle supersampling
//	spx.CircleSmooth(s, c, 12, spx.White)
//
//	// Finer 4x4 grid
//	spx.CircleSmooth(s, c, 12, spx.White, spx.WithSubsamples(4))
type RasterOption func(*rasterOptions)

// rasterOptions holds the sampling configuration of a draw call.
type rasterOptions struct {
	subsamples int
	pattern    []Point2F
}

// defaultPattern is the 9-point triangle coverage pattern: the pixel
// centre, the four axis neighbours and the four diagonal neighbours,
// half a pixel away.
var defaultPattern = []Point2F{
	{0, 0},
	{0.5, 0}, {0, -0.5}, {-0.5, 0}, {0, 0.5},
	{0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}, {-0.5, 0.5},
}

// defaultRasterOptions returns the default sampling configuration.
func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		subsamples: 2,
		pattern:    defaultPattern,
	}
}

func applyRasterOptions(opts []RasterOption) rasterOptions {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSubsamples sets the per-axis supersampling factor of CircleSmooth.
// Values below 1 are ignored.
func WithSubsamples(n int) RasterOption {
	return func(o *rasterOptions) {
		if n >= 1 {
			o.subsamples = n
		}
	}
}

// WithSamplePattern replaces the triangle coverage pattern. Offsets are in
// pixels relative to the pixel centre. An empty pattern is ignored.
//
// The slice is copied.
func WithSamplePattern(offsets []Point2F) RasterOption {
	return func(o *rasterOptions) {
		if len(offsets) > 0 {
			o.pattern = append([]Point2F(nil), offsets...)
		}
	}
}
