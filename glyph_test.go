package spx

import (
	"errors"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestDrawGlyph_RowsFlipped(t *testing.T) {
	s := blackSurface(4, 4)
	g := Glyph{
		Pixmap: []uint8{
			10, 20, // bottom row
			30, 40, // top row
		},
		Size: Pt(2, 2),
	}
	if n := DrawGlyph(s, g, Pt(1, 1), White); n != 0 {
		t.Errorf("DrawGlyph() = %d, want 0", n)
	}

	tests := []struct {
		p    Point
		want uint8
	}{
		{Pt(1, 1), 30},
		{Pt(2, 1), 40},
		{Pt(1, 2), 10},
		{Pt(2, 2), 20},
		{Pt(0, 0), 0},
	}
	for _, tt := range tests {
		if got := s.PixelAt(tt.p.X, tt.p.Y).R; got != tt.want {
			t.Errorf("pixel %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestDrawGlyph_Overflow(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		p    Point
		want int
	}{
		{"inside", solidGlyph(3, 5), Pt(2, 2), 0},
		{"top left corner", solidGlyph(3, 5), Pt(-1, -1), 7},
		{"bottom edge", solidGlyph(3, 5), Pt(0, 6), 9},
		{"right edge counts blank samples", Glyph{Pixmap: make([]uint8, 4), Size: Pt(4, 1)}, Pt(6, 0), 2},
		{"fully outside", solidGlyph(2, 2), Pt(20, 20), 4},
		{"empty glyph", Glyph{}, Pt(-5, -5), 0},
		{"short pixmap", Glyph{Pixmap: []uint8{1}, Size: Pt(2, 2)}, Pt(-5, -5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(8, 8)
			if got := DrawGlyph(s, tt.g, tt.p, White); got != tt.want {
				t.Errorf("DrawGlyph(at %v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

type countingCloser struct {
	closed int
	err    error
}

func (c *countingCloser) Close() error {
	c.closed++
	return c.err
}

func TestFont(t *testing.T) {
	var glyphs [GlyphCount]Glyph
	glyphs['A'] = solidGlyph(2, 3)
	face := &countingCloser{err: errors.New("boom")}
	f := NewFont(face, glyphs)

	if got := f.Glyph('A'); got.Size != Pt(2, 3) {
		t.Errorf("Glyph('A').Size = %v, want (2, 3)", got.Size)
	}
	if got := f.Glyph(200); !got.Empty() {
		t.Errorf("Glyph(200) = %+v, want zero glyph", got)
	}
	if f.Face() != face {
		t.Error("Face() did not return the handle given to NewFont")
	}
	if err := f.Close(); err == nil || face.closed != 1 {
		t.Errorf("Close() = %v, closed %d times; want the face error once", err, face.closed)
	}
}

func TestFontCloseNil(t *testing.T) {
	var f *Font
	if err := f.Close(); err != nil {
		t.Errorf("(*Font)(nil).Close() = %v", err)
	}
	if err := NewFont(nil, [GlyphCount]Glyph{}).Close(); err != nil {
		t.Errorf("Close() without face = %v", err)
	}
}

func TestGlyphEmpty(t *testing.T) {
	if !(Glyph{Advance: fixed.I(3)}).Empty() {
		t.Error("glyph without bitmap should be empty")
	}
	if solidGlyph(1, 1).Empty() {
		t.Error("1x1 glyph should not be empty")
	}
}
