package spx

import "testing"

func TestDefaultRasterOptions(t *testing.T) {
	o := applyRasterOptions(nil)
	if o.subsamples != 2 {
		t.Errorf("subsamples = %d, want 2", o.subsamples)
	}
	if len(o.pattern) != 9 {
		t.Fatalf("len(pattern) = %d, want 9", len(o.pattern))
	}
	if o.pattern[0] != (Point2F{}) {
		t.Errorf("pattern[0] = %v, want pixel centre", o.pattern[0])
	}
	for _, p := range o.pattern {
		if d := max(p.X, -p.X, p.Y, -p.Y); d > 0.5 {
			t.Errorf("offset %v leaves the pixel", p)
		}
	}
}

func TestWithSubsamples(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{4, 4},
		{0, 2},
		{-3, 2},
	}
	for _, tt := range tests {
		if got := applyRasterOptions([]RasterOption{WithSubsamples(tt.n)}).subsamples; got != tt.want {
			t.Errorf("WithSubsamples(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestWithSamplePattern(t *testing.T) {
	custom := []Point2F{{0.25, 0.25}}
	o := applyRasterOptions([]RasterOption{WithSamplePattern(custom)})
	if len(o.pattern) != 1 || o.pattern[0] != custom[0] {
		t.Errorf("pattern = %v, want %v", o.pattern, custom)
	}

	custom[0] = Pf(9, 9)
	if o.pattern[0] == custom[0] {
		t.Error("WithSamplePattern kept a reference to the caller's slice")
	}

	if got := applyRasterOptions([]RasterOption{WithSamplePattern(nil)}).pattern; len(got) != 9 {
		t.Errorf("empty pattern replaced the default: %v", got)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := applyRasterOptions([]RasterOption{WithSubsamples(3), WithSubsamples(5)})
	if o.subsamples != 5 {
		t.Errorf("subsamples = %d, want last option to win", o.subsamples)
	}
}
