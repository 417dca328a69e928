package spx

// Plot writes c at (x, y). Coordinates outside the surface are ignored;
// off-surface drawing is routine, not an error.
func Plot(s *Surface, x, y int, c Pixel) {
	if !s.Inside(x, y) {
		return
	}
	s.pix[y*s.width+x] = c
}

// Blend moves the pixel at (x, y) toward c by coverage t in [0, 1]:
// t=0 leaves it unchanged, t=1 replaces it with c. Coordinates outside
// the surface are ignored.
//
// Blend is the only compositing path of the engine; every anti-aliased
// routine and the glyph compositor go through it.
func Blend(s *Surface, x, y int, t float32, c Pixel) {
	if !s.Inside(x, y) {
		return
	}
	i := y*s.width + x
	s.pix[i] = s.pix[i].Lerp(c, t)
}
