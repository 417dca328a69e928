package spx

// Rect fills the axis-aligned box spanning center-half to center+half,
// both corners included, with a flat color. A negative half extent draws
// nothing.
func Rect(s *Surface, center, half Point, c Pixel) {
	x0 := max(center.X-half.X, 0)
	y0 := max(center.Y-half.Y, 0)
	x1 := min(center.X+half.X, s.width-1)
	y1 := min(center.Y+half.Y, s.height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			Plot(s, x, y, c)
		}
	}
}
