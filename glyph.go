package spx

import (
	"io"

	"golang.org/x/image/math/fixed"
)

// GlyphCount is the number of character codes a Font maps: the 7-bit
// ASCII range.
const GlyphCount = 128

// Glyph is a pre-rasterized character bitmap.
type Glyph struct {
	// Pixmap holds Size.X*Size.Y coverage values. Rows are stored bottom
	// row first: row 0 is the visual bottom of the glyph.
	Pixmap []uint8

	// Size is the bitmap width and height in pixels.
	Size Point

	// Bearing is the offset of the bitmap from the pen position: X to its
	// left edge, Y from the baseline up to its top row.
	Bearing Point

	// Advance is the horizontal pen movement after the glyph.
	Advance fixed.Int26_6
}

// Empty reports whether the glyph has no bitmap.
func (g Glyph) Empty() bool {
	return g.Size.X <= 0 || g.Size.Y <= 0
}

// Font is an immutable table of glyphs indexed by character code.
// It may own a face handle from the loader that produced it; Close
// releases it.
type Font struct {
	glyphs [GlyphCount]Glyph
	face   io.Closer
}

// NewFont creates a font from a complete glyph table. face may be nil.
func NewFont(face io.Closer, glyphs [GlyphCount]Glyph) *Font {
	return &Font{glyphs: glyphs, face: face}
}

// Glyph returns the glyph for a character code, or the zero Glyph for
// codes outside the table.
func (f *Font) Glyph(code byte) Glyph {
	if int(code) >= GlyphCount {
		return Glyph{}
	}
	return f.glyphs[code]
}

// Face returns the face handle the font was rendered from, if any.
func (f *Font) Face() io.Closer {
	return f.face
}

// Close releases the face handle. It is safe to call on a nil Font or a
// font without a face.
func (f *Font) Close() error {
	if f == nil || f.face == nil {
		return nil
	}
	return f.face.Close()
}

// DrawGlyph blends g into s with its top-left corner at p, each bitmap
// sample weighting color c by coverage/255.
//
// It returns how many glyph samples fell outside the surface. Unlike the
// geometric primitives, callers use this count to detect clipped text.
func DrawGlyph(s *Surface, g Glyph, p Point, c Pixel) int {
	w, h := g.Size.X, g.Size.Y
	if g.Empty() || len(g.Pixmap) < w*h {
		return 0
	}

	overflow := 0
	for r := range h {
		y := p.Y + r
		row := g.Pixmap[(h-1-r)*w : (h-r)*w]
		for i, cov := range row {
			x := p.X + i
			if !s.Inside(x, y) {
				overflow++
				continue
			}
			if cov != 0 {
				Blend(s, x, y, float32(cov)/255, c)
			}
		}
	}
	return overflow
}
