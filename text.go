package spx

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DrawText draws text with f, starting with the pen at p on the baseline.
// Each glyph is placed by its bearing and the pen moves right by its
// whole-pixel advance. Once the pen reaches the right edge of the surface
// drawing stops.
//
// The result is the sum of the [DrawGlyph] overflow counts, plus one when
// the text was cut at the right edge; 0 means the whole string landed on
// the surface.
//
// Characters outside ASCII are folded to their base letter where one
// exists ("é" draws as "e") and to '?' otherwise.
func DrawText(s *Surface, f *Font, text string, p Point, c Pixel) int {
	folded := FoldASCII(text)

	overflow := 0
	pen := p.X
	for i := 0; i < len(folded); i++ {
		g := f.Glyph(folded[i])
		overflow += DrawGlyph(s, g, Pt(pen+g.Bearing.X, p.Y-g.Bearing.Y), c)
		pen += g.Advance.Floor()
		if pen >= s.width {
			overflow++
			break
		}
	}

	if overflow > 0 {
		Logger().Debug("spx: text overflow",
			"text", text,
			"overflow", overflow,
			"width", s.width)
	}
	return overflow
}

// Advance returns the pen movement in pixels for drawing text with f.
func (f *Font) Advance(text string) int {
	folded := FoldASCII(text)
	n := 0
	for i := 0; i < len(folded); i++ {
		n += f.Glyph(folded[i]).Advance.Floor()
	}
	return n
}

// FoldASCII maps text onto the character codes a Font covers: accents are
// stripped through NFD decomposition and any rune still outside ASCII
// becomes '?'.
func FoldASCII(text string) string {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= GlyphCount {
			ascii = false
			break
		}
	}
	if ascii {
		return text
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	buf := make([]byte, 0, len(stripped))
	for _, r := range stripped {
		if r >= GlyphCount {
			r = '?'
		}
		buf = append(buf, byte(r))
	}
	return string(buf)
}
