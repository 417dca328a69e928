package spx

import "testing"

func TestCircle_Membership(t *testing.T) {
	s := NewSurface(24, 24)
	Circle(s, Pt(10, 10), 5, White)

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(10, 15), true},
		{Pt(13, 14), true},
		{Pt(5, 10), true},
		{Pt(10, 16), false},
		{Pt(14, 14), false},
		{Pt(4, 10), false},
	}
	for _, tt := range tests {
		if got := s.PixelAt(tt.p.X, tt.p.Y) == White; got != tt.want {
			t.Errorf("pixel %v inside = %v, want %v", tt.p, got, tt.want)
		}
	}

	// Lattice points with x²+y² <= 25.
	if got := len(touched(s)); got != 81 {
		t.Errorf("Circle(r=5) plotted %d pixels, want 81", got)
	}
}

func TestCircle_Clipped(t *testing.T) {
	s := NewSurface(8, 8)
	Circle(s, Pt(0, 0), 3, White)
	// Quarter disc: x, y >= 0 and x²+y² <= 9.
	if got := len(touched(s)); got != 11 {
		t.Errorf("clipped circle plotted %d pixels, want 11", got)
	}

	Circle(s, Pt(-50, -50), 3, Red)
	for p := range touched(s) {
		if s.PixelAt(p.X, p.Y) == Red {
			t.Fatal("off-surface circle reached the surface")
		}
	}
}

func TestCircle_ZeroRadius(t *testing.T) {
	s := NewSurface(4, 4)
	Circle(s, Pt(2, 2), 0, White)
	if got := touched(s); len(got) != 1 || !got[Pt(2, 2)] {
		t.Errorf("Circle(r=0) = %s, want centre pixel only", sortedPoints(got))
	}
}

func TestCircleSmooth(t *testing.T) {
	s := blackSurface(24, 24)
	CircleSmooth(s, Pt(10, 10), 5, White)

	tests := []struct {
		p    Point
		want uint8
	}{
		{Pt(10, 10), 255},
		{Pt(10, 15), 128}, // half the 2x2 samples inside
		{Pt(10, 16), 0},
	}
	for _, tt := range tests {
		if got := s.PixelAt(tt.p.X, tt.p.Y).R; got != tt.want {
			t.Errorf("coverage at %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestCircleSmooth_SingleSampleMatchesCircle(t *testing.T) {
	hard := NewSurface(32, 32)
	soft := NewSurface(32, 32)
	Circle(hard, Pt(15, 14), 7.5, White)
	CircleSmooth(soft, Pt(15, 14), 7.5, White, WithSubsamples(1))

	if a, b := touched(hard), touched(soft); !sameSet(a, b) {
		t.Errorf("CircleSmooth(N=1) = %d pixels, Circle = %d pixels", len(b), len(a))
	}
}

func TestCircleSmooth_FinerGridStaysInBox(t *testing.T) {
	s := blackSurface(16, 16)
	CircleSmooth(s, Pt(8, 8), 3, White, WithSubsamples(4))
	for y := range 16 {
		for x := range 16 {
			dx, dy := x-8, y-8
			if dx*dx+dy*dy > 5*5 && s.PixelAt(x, y) != Black {
				t.Errorf("pixel (%d, %d) outside r+1 was written", x, y)
			}
		}
	}
}

func TestRect(t *testing.T) {
	tests := []struct {
		name         string
		center, half Point
		want         int
	}{
		{"inside", Pt(5, 5), Pt(2, 1), 15},
		{"clipped corner", Pt(0, 0), Pt(2, 2), 9},
		{"single pixel", Pt(3, 3), Pt(0, 0), 1},
		{"negative extent", Pt(3, 3), Pt(-1, 2), 0},
		{"off surface", Pt(-10, 4), Pt(2, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(10, 10)
			Rect(s, tt.center, tt.half, White)
			if got := len(touched(s)); got != tt.want {
				t.Errorf("Rect(%v, %v) filled %d pixels, want %d", tt.center, tt.half, got, tt.want)
			}
		})
	}
}

func BenchmarkCircleSmooth(b *testing.B) {
	s := NewSurface(256, 256)
	for b.Loop() {
		CircleSmooth(s, Pt(128, 128), 100, White)
	}
}
