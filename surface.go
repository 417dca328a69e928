package spx

import (
	"fmt"
	"image"
	"image/color"
)

// Surface is a rectangular pixel buffer, row-major with the origin at the
// top-left corner. Width and height are fixed at construction.
//
// A Surface may wrap memory owned by the caller (see [WrapSurface]); every
// drawing routine borrows it for the duration of the call only.
type Surface struct {
	width  int
	height int
	pix    []Pixel
}

// NewSurface allocates a transparent surface with the given dimensions.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// WrapSurface returns a surface drawing into pix, which must hold at least
// width*height pixels. The caller keeps ownership of pix.
func WrapSurface(pix []Pixel, width, height int) *Surface {
	if width < 0 || height < 0 || len(pix) < width*height {
		panic(fmt.Sprintf("spx: WrapSurface: %d pixels cannot back a %dx%d surface", len(pix), width, height))
	}
	return &Surface{
		width:  width,
		height: height,
		pix:    pix[:width*height],
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Pix returns the backing pixel slice, row-major.
func (s *Surface) Pix() []Pixel {
	return s.pix
}

// Inside reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) Inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// PixelAt returns the pixel at (x, y), or Transparent when outside.
func (s *Surface) PixelAt(x, y int) Pixel {
	if !s.Inside(x, y) {
		return Transparent
	}
	return s.pix[y*s.width+x]
}

// Clear fills the entire surface with a color.
func (s *Surface) Clear(c Pixel) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// ToImage copies the surface into a new image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.pix {
		j := i * 4
		img.Pix[j+0] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = p.A
	}
	return img
}

// SurfaceFromImage creates a surface holding a copy of img.
// It is the usual way to build a texture for [TriangleTextured].
func SurfaceFromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.pix[y*s.width+x] = PixelFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return s
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).NRGBA()
}

// Set implements the draw.Image interface with the same clipping as [Plot].
func (s *Surface) Set(x, y int, c color.Color) {
	Plot(s, x, y, PixelFromColor(c))
}
