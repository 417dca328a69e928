package font

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chewxy/math32"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/gogpu/spx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// gotextBackend implements Backend using github.com/go-text/typesetting.
// Outlines are scan-converted with golang.org/x/image/vector.
type gotextBackend struct{}

// Parse implements Backend.Parse.
func (gotextBackend) Parse(data []byte) (Parsed, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: gotext: failed to parse font: %w", err)
	}
	return &gotextParsed{face: face}, nil
}

// gotextParsed implements Parsed using a go-text Face.
type gotextParsed struct {
	face *gtfont.Face
}

// Name implements Parsed.Name.
func (p *gotextParsed) Name() string {
	return p.face.Describe().Family
}

// Rasterizer implements Parsed.Rasterizer. Hinting is not supported and
// is ignored.
func (p *gotextParsed) Rasterizer(size float64, opts RenderOptions) (Rasterizer, error) {
	upem := p.face.Upem()
	if upem == 0 {
		return nil, fmt.Errorf("font: gotext: font has no units per em")
	}
	return &outlineRasterizer{
		face:  p.face,
		scale: float32(size*opts.DPI/72) / float32(upem),
	}, nil
}

// outlineRasterizer renders glyph outlines at a fixed scale.
type outlineRasterizer struct {
	face  *gtfont.Face
	scale float32 // pixels per font unit
}

// Glyph implements Rasterizer.Glyph.
func (r *outlineRasterizer) Glyph(c rune) (spx.Glyph, bool) {
	gid, ok := r.face.NominalGlyph(c)
	if !ok {
		return spx.Glyph{}, false
	}
	advance := fixed.Int26_6(math32.Round(r.face.HorizontalAdvance(gid) * r.scale * 64))

	outline, ok := r.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return spx.Glyph{Advance: advance}, true
	}

	g := r.rasterize(outline.Segments)
	g.Advance = advance
	return g, true
}

// Close implements Rasterizer.Close.
func (r *outlineRasterizer) Close() error {
	return nil
}

// rasterize fills the outline into a bitmap covering its control box.
// Font units grow upward; the bitmap grows downward.
func (r *outlineRasterizer) rasterize(segs []gtfont.Segment) spx.Glyph {
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, seg := range segs {
		for _, p := range seg.ArgsSlice() {
			x, y := p.X*r.scale, -p.Y*r.scale
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	x0, y0 := int(math32.Floor(minX)), int(math32.Floor(minY))
	w := int(math32.Ceil(maxX)) - x0
	h := int(math32.Ceil(maxY)) - y0
	if w <= 0 || h <= 0 {
		return spx.Glyph{}
	}

	pt := func(p ot.SegmentPoint) (float32, float32) {
		return p.X*r.scale - float32(x0), -p.Y*r.scale - float32(y0)
	}

	z := vector.NewRasterizer(w, h)
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			z.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	pix := make([]uint8, w*h)
	for y := range h {
		copy(pix[(h-1-y)*w:(h-y)*w], dst.Pix[y*dst.Stride:y*dst.Stride+w])
	}

	return spx.Glyph{
		Pixmap:  pix,
		Size:    spx.Pt(w, h),
		Bearing: spx.Pt(x0, -y0),
	}
}
