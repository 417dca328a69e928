package spx

import "github.com/chewxy/math32"

// Circle fills a disc of radius r around the centre of pixel c with hard
// edges. A pixel is plotted when its centre lies within r of the disc
// centre.
func Circle(s *Surface, c Point, r float32, col Pixel) {
	r2 := r * r
	x0, y0, x1, y1 := circleBox(s, c, r)
	for y := y0; y <= y1; y++ {
		dy := float32(y - c.Y)
		for x := x0; x <= x1; x++ {
			dx := float32(x - c.X)
			if dx*dx+dy*dy <= r2 {
				Plot(s, x, y, col)
			}
		}
	}
}

// CircleSmooth fills a disc like [Circle] with anti-aliased edges. Each
// pixel is supersampled on an N x N grid (N = 2 unless set with
// [WithSubsamples]) and blended by the fraction of samples inside.
func CircleSmooth(s *Surface, c Point, r float32, col Pixel, opts ...RasterOption) {
	o := applyRasterOptions(opts)
	n := o.subsamples
	step := 1 / float32(n)
	ni := 1 / float32(n*n)
	r2 := r * r

	x0, y0, x1, y1 := circleBox(s, c, r+1)
	for y := y0; y <= y1; y++ {
		dy := float32(y-c.Y) + step/2 - 0.5
		for x := x0; x <= x1; x++ {
			dx := float32(x-c.X) + step/2 - 0.5
			count := 0
			for sy := range n {
				sdy := dy + float32(sy)*step
				for sx := range n {
					sdx := dx + float32(sx)*step
					if sdx*sdx+sdy*sdy <= r2 {
						count++
					}
				}
			}
			if count > 0 {
				Blend(s, x, y, float32(count)*ni, col)
			}
		}
	}
}

// circleBox returns the pixel box c +- r clamped to the surface.
func circleBox(s *Surface, c Point, r float32) (x0, y0, x1, y1 int) {
	cx, cy := float32(c.X), float32(c.Y)
	x0 = max(int(math32.Floor(cx-r)), 0)
	y0 = max(int(math32.Floor(cy-r)), 0)
	x1 = min(int(math32.Ceil(cx+r)), s.width-1)
	y1 = min(int(math32.Ceil(cy+r)), s.height-1)
	return x0, y0, x1, y1
}
