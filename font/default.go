package font

import (
	"sync"

	"github.com/gogpu/spx"
	"golang.org/x/image/font/basicfont"
)

var defaultFont = sync.OnceValue(func() *spx.Font {
	glyphs, _ := renderGlyphs(&faceRasterizer{face: basicfont.Face7x13})
	return spx.NewFont(nil, glyphs)
})

// Default returns the built-in font: the X11 misc-fixed 7x13 bitmap face
// covering printable ASCII. It is built once and shared; it needs no
// Library and closing it is a no-op.
func Default() *spx.Font {
	return defaultFont()
}
