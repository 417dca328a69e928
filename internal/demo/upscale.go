package demo

import (
	"github.com/anthonynsimon/bild/transform"
	"github.com/gogpu/spx"
)

// Upscale enlarges s by an integer factor with nearest-neighbour
// sampling, so every source pixel becomes a factor x factor block.
// A factor below 2 returns s itself.
func Upscale(s *spx.Surface, factor int) *spx.Surface {
	if factor < 2 {
		return s
	}
	img := transform.Resize(s, s.Width()*factor, s.Height()*factor, transform.NearestNeighbor)
	return spx.SurfaceFromImage(img)
}
