package demo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/spx"
)

// halfBlock paints the upper half of a cell with the foreground color and
// leaves the lower half to the background.
const halfBlock = "▀"

// Preview renders s as terminal text, two pixel rows per line, at most
// cols cells wide. Wider surfaces are downsampled first; cols <= 0 keeps
// the surface width.
func Preview(s *spx.Surface, cols int) string {
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return ""
	}
	if cols > 0 && w > cols {
		h = max(h*cols/w, 1)
		w = cols
		s = spx.SurfaceFromImage(transform.Resize(s, w, h, transform.NearestNeighbor))
	}

	styles := make(map[[2]spx.Pixel]lipgloss.Style)
	lines := make([]string, 0, (h+1)/2)
	var b strings.Builder
	for y := 0; y < h; y += 2 {
		b.Reset()
		for x := range w {
			key := [2]spx.Pixel{opaque(s.PixelAt(x, y)), opaque(s.PixelAt(x, y+1))}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexColor(key[0]))).
					Background(lipgloss.Color(hexColor(key[1])))
				styles[key] = st
			}
			b.WriteString(st.Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// opaque composites p over black; terminals have no alpha.
func opaque(p spx.Pixel) spx.Pixel {
	return spx.Black.Lerp(spx.RGB(p.R, p.G, p.B), float32(p.A)/255)
}

func hexColor(p spx.Pixel) string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}
