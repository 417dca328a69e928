package spx

import (
	"fmt"
	"sort"

	"golang.org/x/image/math/fixed"
)

// touched returns the set of pixels that differ from Transparent.
func touched(s *Surface) map[Point]bool {
	set := make(map[Point]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.PixelAt(x, y) != Transparent {
				set[Pt(x, y)] = true
			}
		}
	}
	return set
}

// sortedPoints renders a pixel set in a stable order for failure messages.
func sortedPoints(set map[Point]bool) string {
	pts := make([]Point, 0, len(set))
	for p := range set {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return fmt.Sprint(pts)
}

func sameSet(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// blackSurface returns an opaque black surface, so a blend of White with
// coverage t leaves round(255*t) in every color channel.
func blackSurface(w, h int) *Surface {
	s := NewSurface(w, h)
	s.Clear(Black)
	return s
}

// solidGlyph returns a w x h glyph fully covered, advancing w+1 pixels.
func solidGlyph(w, h int) Glyph {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = 255
	}
	return Glyph{
		Pixmap:  pix,
		Size:    Pt(w, h),
		Bearing: Pt(0, h),
		Advance: fixed.I(w + 1),
	}
}

// testFont maps every printable ASCII code to a solid 3x5 glyph.
func testFont() *Font {
	var glyphs [GlyphCount]Glyph
	for c := ' ' + 1; c < GlyphCount; c++ {
		glyphs[c] = solidGlyph(3, 5)
	}
	glyphs[' '] = Glyph{Advance: fixed.I(4)}
	return NewFont(nil, glyphs)
}
