package spx

import (
	"image"
	"image/color"
	"image/draw"
	"slices"
	"testing"
)

// Verify at compile time that Surface implements draw.Image.
var _ draw.Image = (*Surface)(nil)

func TestNewSurface(t *testing.T) {
	s := NewSurface(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Fatalf("NewSurface(7, 3) size = %dx%d", s.Width(), s.Height())
	}
	if len(s.Pix()) != 21 {
		t.Errorf("len(Pix()) = %d, want 21", len(s.Pix()))
	}
	if got := NewSurface(-1, 4); got.Width() != 0 || len(got.Pix()) != 0 {
		t.Errorf("NewSurface(-1, 4) = %dx%d, want empty", got.Width(), got.Height())
	}
}

func TestWrapSurfaceBorrowsMemory(t *testing.T) {
	pix := make([]Pixel, 4*4)
	s := WrapSurface(pix, 4, 4)
	Plot(s, 1, 2, Red)
	if pix[2*4+1] != Red {
		t.Errorf("caller buffer = %v, want %v", pix[2*4+1], Red)
	}
}

func TestWrapSurfacePanicsOnShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WrapSurface with a short buffer did not panic")
		}
	}()
	WrapSurface(make([]Pixel, 3), 2, 2)
}

func TestPlot_InBounds(t *testing.T) {
	s := NewSurface(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := Pixel{uint8(x), uint8(y), 1, 255}
			Plot(s, x, y, c)
			if got := s.PixelAt(x, y); got != c {
				t.Fatalf("PixelAt(%d, %d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

// TestPlot_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestPlot_OutOfBounds(t *testing.T) {
	s := NewSurface(10, 10)
	s.Clear(Black)
	original := slices.Clone(s.Pix())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		Plot(s, c.x, c.y, Red)
		Blend(s, c.x, c.y, 1, Red)
	}

	if !slices.Equal(s.Pix(), original) {
		t.Fatal("out-of-bounds write modified the surface")
	}
}

func TestBlend(t *testing.T) {
	base := Pixel{10, 20, 30, 255}
	c := Pixel{200, 100, 0, 128}

	tests := []struct {
		name string
		t    float32
		want Pixel
	}{
		{"zero coverage leaves pixel", 0, base},
		{"full coverage replaces pixel", 1, c},
		{"half coverage", 0.5, Pixel{105, 60, 15, 192}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(3, 3)
			s.Clear(base)
			Blend(s, 1, 1, tt.t, c)
			if got := s.PixelAt(1, 1); got != tt.want {
				t.Errorf("Blend(t=%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSurfaceImageRoundTrip(t *testing.T) {
	s := NewSurface(4, 2)
	Plot(s, 0, 0, Red)
	Plot(s, 3, 1, Pixel{1, 2, 3, 4})

	img := s.ToImage()
	if got := img.NRGBAAt(3, 1); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("ToImage().NRGBAAt(3, 1) = %v", got)
	}

	back := SurfaceFromImage(img)
	if !slices.Equal(back.Pix(), s.Pix()) {
		t.Error("SurfaceFromImage(ToImage()) differs from source")
	}

	// Offset bounds are rebased to the origin.
	sub := img.SubImage(image.Rect(3, 1, 4, 2))
	if got := SurfaceFromImage(sub).PixelAt(0, 0); got != (Pixel{1, 2, 3, 4}) {
		t.Errorf("SurfaceFromImage(sub).PixelAt(0, 0) = %v", got)
	}
}

func TestSurfaceSet(t *testing.T) {
	s := NewSurface(2, 2)
	draw.Draw(s, s.Bounds(), image.NewUniform(color.NRGBA{0, 0, 255, 255}), image.Point{}, draw.Src)
	for _, p := range s.Pix() {
		if p != Blue {
			t.Fatalf("draw.Draw pixel = %v, want %v", p, Blue)
		}
	}
	s.Set(5, 5, color.White) // ignored
	if s.At(-1, 0) != (color.NRGBA{}) {
		t.Error("At outside bounds should be transparent")
	}
}
