package font

import (
	"fmt"

	"github.com/gogpu/spx"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend implements Backend using golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Parse implements Backend.Parse.
func (ximageBackend) Parse(data []byte) (Parsed, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: ximage: failed to parse font: %w", err)
	}
	return &ximageParsed{font: f}, nil
}

// ximageParsed implements Parsed using sfnt.Font.
type ximageParsed struct {
	font *opentype.Font
}

// Name implements Parsed.Name.
func (p *ximageParsed) Name() string {
	name, err := p.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Rasterizer implements Parsed.Rasterizer.
func (p *ximageParsed) Rasterizer(size float64, opts RenderOptions) (Rasterizer, error) {
	hinting := xfont.HintingNone
	if opts.Hinting {
		hinting = xfont.HintingFull
	}
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     opts.DPI,
		Hinting: hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("font: ximage: failed to create face: %w", err)
	}
	return &faceRasterizer{face: face, font: p.font}, nil
}

// faceRasterizer renders glyphs through any x/image font.Face.
type faceRasterizer struct {
	face xfont.Face

	// font, when set, identifies runes mapped to the notdef glyph, which
	// opentype faces render instead of reporting them missing.
	font *opentype.Font
	buf  sfnt.Buffer
}

// Glyph implements Rasterizer.Glyph.
func (r *faceRasterizer) Glyph(c rune) (spx.Glyph, bool) {
	if r.font != nil {
		if idx, err := r.font.GlyphIndex(&r.buf, c); err != nil || idx == 0 {
			return spx.Glyph{}, false
		}
	}
	return glyphFromFace(r.face, c)
}

// Close implements Rasterizer.Close.
func (r *faceRasterizer) Close() error {
	return r.face.Close()
}

// glyphFromFace copies the mask of c out of face. The face may reuse its
// mask buffer on the next call, so the coverage is copied immediately,
// bottom row first.
func glyphFromFace(face xfont.Face, c rune) (spx.Glyph, bool) {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, c)
	if !ok {
		return spx.Glyph{}, false
	}

	w, h := dr.Dx(), dr.Dy()
	if w <= 0 || h <= 0 || mask == nil {
		return spx.Glyph{Advance: advance}, true
	}

	pix := make([]uint8, w*h)
	for y := range h {
		row := pix[(h-1-y)*w : (h-y)*w]
		for x := range row {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			row[x] = uint8(a >> 8)
		}
	}

	return spx.Glyph{
		Pixmap:  pix,
		Size:    spx.Pt(w, h),
		Bearing: spx.Pt(dr.Min.X, -dr.Min.Y),
		Advance: advance,
	}, true
}
